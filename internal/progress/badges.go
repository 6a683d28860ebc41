package progress

import "quest-academy-service/internal/domain"

// Badge names. A badge is unique and non-revocable once earned.
const (
	BadgePointCollector    = "Point Collector"
	BadgePointMaster       = "Point Master"
	BadgeDedicatedLearner  = "Dedicated Learner"
	BadgeStudyChampion     = "Study Champion"
	BadgeMathWizard        = "Math Wizard"
	BadgeReadingHero       = "Reading Hero"
	BadgeGameExplorer      = "Game Explorer"
	BadgeGameMaster        = "Game Master"
	BadgeMiniGameChampion  = "Mini-Game Champion"
	BadgeChallengeSeeker   = "Challenge Seeker"
	BadgeChallengeMaster   = "Challenge Master"
	BadgeStreakWarrior     = "Streak Warrior"
	BadgeLeaderboardLegend = "Leaderboard Legend"
	BadgeSpeedDemon        = "Speed Demon"
	BadgeWordMaster        = "Word Master"
	BadgePatternExpert     = "Pattern Expert"
)

// newlyEarnedBadges evaluates every threshold against the updated aggregate
// and returns the badges that qualify now but were not earned before. Rows
// are independent and order-insensitive; each badge is awarded at most once.
func newlyEarnedBadges(p domain.Progress) []string {
	var earned []string
	award := func(qualified bool, name string) {
		if qualified && !p.HasBadge(name) {
			earned = append(earned, name)
		}
	}

	award(p.TotalPoints >= 1000, BadgePointCollector)
	award(p.TotalPoints >= 5000, BadgePointMaster)

	award(len(p.CompletedLessons) >= 5, BadgeDedicatedLearner)
	award(len(p.CompletedLessons) >= 20, BadgeStudyChampion)

	award(p.MathLevel >= 3, BadgeMathWizard)
	award(p.ReadingLevel >= 3, BadgeReadingHero)

	award(p.Games.GamesPlayed >= 10, BadgeGameExplorer)
	award(p.Games.GamesPlayed >= 50, BadgeGameMaster)
	award(p.Games.GamePoints >= 2000, BadgeMiniGameChampion)

	award(p.Challenges.ChallengesCompleted >= 5, BadgeChallengeSeeker)
	award(p.Challenges.ChallengesCompleted >= 25, BadgeChallengeMaster)
	award(p.Challenges.Streak >= 5, BadgeStreakWarrior)
	award(p.Challenges.ChallengePoints >= 3000, BadgeLeaderboardLegend)

	// Game-type milestones on cumulative correct answers.
	award(p.Games.CorrectByType["speed-math"] >= 50, BadgeSpeedDemon)
	award(p.Games.CorrectByType["word-scramble"] >= 30, BadgeWordMaster)
	award(p.Games.CorrectByType["number-sequence"]+p.Games.CorrectByType["pattern-recognition"] >= 30, BadgePatternExpert)

	return earned
}
