package scorecard

// ComputeStats derives match-level statistics from both innings. Leaders
// are updated only on a strictly greater count, so ties keep whichever
// player appeared first in the first-innings-then-second-innings order.
func ComputeStats(firstInnings, secondInnings Innings) ComputedStats {
	stats := ComputedStats{
		TotalMatchScore: firstInnings.Total.Runs + secondInnings.Total.Runs,
	}

	allBatting := make([]BattingPerformance, 0, len(firstInnings.Batting)+len(secondInnings.Batting))
	allBatting = append(allBatting, firstInnings.Batting...)
	allBatting = append(allBatting, secondInnings.Batting...)

	for _, batsman := range allBatting {
		if batsman.Sixes > stats.MostSixes.Count {
			stats.MostSixes = StatLeader{
				PlayerName: batsman.PlayerName,
				Count:      batsman.Sixes,
				PlayerID:   batsman.PlayerID,
			}
		}
		if batsman.Fours > stats.MostFours.Count {
			stats.MostFours = StatLeader{
				PlayerName: batsman.PlayerName,
				Count:      batsman.Fours,
				PlayerID:   batsman.PlayerID,
			}
		}
		if batsman.Runs >= 50 {
			stats.FiftiesCount++
		}
	}

	allBowling := make([]BowlingPerformance, 0, len(firstInnings.Bowling)+len(secondInnings.Bowling))
	allBowling = append(allBowling, firstInnings.Bowling...)
	allBowling = append(allBowling, secondInnings.Bowling...)

	for _, bowler := range allBowling {
		if bowler.Wickets > stats.MostWickets.Count {
			stats.MostWickets = StatLeader{
				PlayerName: bowler.PlayerName,
				Count:      bowler.Wickets,
				PlayerID:   bowler.PlayerID,
			}
		}
	}

	return stats
}
