package memory

import "quest-academy-service/internal/domain"

// SeedProblemSets is the built-in practice content used when no database is
// configured. Keys follow catalog.SetID / catalog.GameSetID conventions.
func SeedProblemSets() map[string][]domain.Problem {
	return map[string][]domain.Problem{
		"math-1": {
			{ID: "math-1-1", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 1, Question: "What is 7 + 5?", Options: []string{"11", "12", "13", "14"}, Answer: "12", Points: 10},
			{ID: "math-1-2", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 1, Question: "What is 15 - 8?", Options: []string{"6", "7", "8", "9"}, Answer: "7", Points: 10},
			{ID: "math-1-3", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 1, Question: "What is 9 + 6?", Options: []string{"14", "15", "16", "17"}, Answer: "15", Points: 10},
			{ID: "math-1-4", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 1, Question: "What is 20 - 12?", Options: []string{"7", "8", "9", "10"}, Answer: "8", Points: 10},
			{ID: "math-1-5", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 1, Question: "What is 4 + 9?", Options: []string{"12", "13", "14", "15"}, Answer: "13", Points: 10},
			{ID: "math-1-6", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 1, Question: "Sara has 6 apples and buys 7 more. How many does she have?", Options: []string{"12", "13", "14", "15"}, Answer: "13", Points: 15},
		},
		"math-2": {
			{ID: "math-2-1", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 2, Question: "What is 6 x 7?", Options: []string{"40", "41", "42", "43"}, Answer: "42", Points: 20},
			{ID: "math-2-2", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 2, Question: "What is 56 / 8?", Options: []string{"6", "7", "8", "9"}, Answer: "7", Points: 20},
			{ID: "math-2-3", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 2, Question: "What is 9 x 4?", Options: []string{"32", "34", "36", "38"}, Answer: "36", Points: 20},
			{ID: "math-2-4", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 2, Question: "What is 72 / 9?", Options: []string{"7", "8", "9", "10"}, Answer: "8", Points: 20},
			{ID: "math-2-5", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 2, Question: "What is 8 x 8?", Options: []string{"62", "64", "66", "68"}, Answer: "64", Points: 20},
		},
		"math-3": {
			{ID: "math-3-1", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 3, Question: "A train travels 60 km in 1 hour. How far does it go in 3 hours?", Options: []string{"120 km", "150 km", "180 km", "200 km"}, Answer: "180 km", Points: 30},
			{ID: "math-3-2", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 3, Question: "What is 13 x 12?", Options: []string{"144", "156", "158", "166"}, Answer: "156", Points: 30},
			{ID: "math-3-3", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 3, Question: "What is 25% of 80?", Options: []string{"15", "20", "25", "30"}, Answer: "20", Points: 30},
			{ID: "math-3-4", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 3, Question: "If 3x = 27, what is x?", Options: []string{"7", "8", "9", "10"}, Answer: "9", Points: 30},
			{ID: "math-3-5", Type: domain.ProblemMultipleChoice, Subject: domain.SubjectMath, Difficulty: 3, Question: "What is 144 / 12?", Options: []string{"10", "11", "12", "13"}, Answer: "12", Points: 30},
		},
		"reading-1": {
			{ID: "reading-1-1", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 1, Story: "Max the puppy loved to play in the garden. He chased butterflies and dug small holes near the roses.", Question: "Where did Max like to play?", Options: []string{"In the house", "In the garden", "At the park", "On the beach"}, Answer: "In the garden", Points: 15},
			{ID: "reading-1-2", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 1, Story: "Lily painted a picture of the sun. She used bright yellow and orange colors.", Question: "What colors did Lily use?", Options: []string{"Blue and green", "Yellow and orange", "Red and purple", "Black and white"}, Answer: "Yellow and orange", Points: 15},
			{ID: "reading-1-3", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 1, Story: "Tom found a shiny red ball under the tree. He kicked it all the way home.", Question: "What did Tom find?", Options: []string{"A shiny red ball", "A blue kite", "A yellow hat", "A green frog"}, Answer: "A shiny red ball", Points: 15},
			{ID: "reading-1-4", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 1, Story: "Mia and her brother baked cookies on Sunday. The kitchen smelled like chocolate.", Question: "When did Mia bake cookies?", Options: []string{"Monday", "Friday", "Saturday", "Sunday"}, Answer: "Sunday", Points: 15},
		},
		"reading-2": {
			{ID: "reading-2-1", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 2, Story: "The old lighthouse stood on the rocky cliff for a hundred years. Every night its beam guided ships safely past the dangerous rocks below.", Question: "What was the lighthouse's job?", Options: []string{"To warn about storms", "To guide ships past the rocks", "To light the town", "To signal airplanes"}, Answer: "To guide ships past the rocks", Points: 25},
			{ID: "reading-2-2", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 2, Story: "Emma planted a tiny seed in spring. She watered it every day, and by summer a tall sunflower towered over the fence.", Question: "What grew from Emma's seed?", Options: []string{"A rose", "A sunflower", "An oak tree", "A tomato plant"}, Answer: "A sunflower", Points: 25},
			{ID: "reading-2-3", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 2, Story: "The science fair was on Friday. Ben built a volcano that erupted with red foam, and the judges gave him first prize.", Question: "What prize did Ben win?", Options: []string{"Second prize", "Third prize", "First prize", "No prize"}, Answer: "First prize", Points: 25},
			{ID: "reading-2-4", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 2, Story: "During the night a thick fog rolled in from the sea. By morning the whole harbor had disappeared behind a gray curtain.", Question: "Where did the fog come from?", Options: []string{"The mountains", "The forest", "The sea", "The city"}, Answer: "The sea", Points: 25},
		},
		"reading-3": {
			{ID: "reading-3-1", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 3, Story: "Although the expedition had planned to reach the summit by noon, a sudden storm forced the climbers to shelter in a crevasse until the winds calmed. Only at dusk did they finally plant their flag at the peak.", Question: "Why were the climbers delayed?", Options: []string{"They lost their map", "A sudden storm", "An injured climber", "Broken equipment"}, Answer: "A sudden storm", Points: 35},
			{ID: "reading-3-2", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 3, Story: "The librarian discovered a letter tucked inside a donated book. Dated 1912, it described daily life aboard a steamship crossing the Atlantic.", Question: "What did the letter describe?", Options: []string{"A train journey", "Life aboard a steamship", "A village festival", "A school day"}, Answer: "Life aboard a steamship", Points: 35},
			{ID: "reading-3-3", Type: domain.ProblemComprehension, Subject: domain.SubjectReading, Difficulty: 3, Story: "Coral reefs are home to a quarter of all ocean species, yet they cover less than one percent of the sea floor. Scientists call them the rainforests of the sea.", Question: "Why are reefs called the rainforests of the sea?", Options: []string{"They are green", "They shelter a huge share of species", "They grow tall", "They produce rain"}, Answer: "They shelter a huge share of species", Points: 35},
		},
		"game-speed-math-1": {
			{ID: "sm-1-1", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 1, Question: "3 + 4", Answer: "7", Points: 5},
			{ID: "sm-1-2", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 1, Question: "9 - 5", Answer: "4", Points: 5},
			{ID: "sm-1-3", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 1, Question: "6 + 8", Answer: "14", Points: 5},
			{ID: "sm-1-4", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 1, Question: "12 - 7", Answer: "5", Points: 5},
			{ID: "sm-1-5", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 1, Question: "5 + 9", Answer: "14", Points: 5},
			{ID: "sm-1-6", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 1, Question: "16 - 9", Answer: "7", Points: 5},
		},
		"game-speed-math-2": {
			{ID: "sm-2-1", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 2, Question: "7 x 6", Answer: "42", Points: 8},
			{ID: "sm-2-2", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 2, Question: "48 / 6", Answer: "8", Points: 8},
			{ID: "sm-2-3", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 2, Question: "9 x 9", Answer: "81", Points: 8},
			{ID: "sm-2-4", Type: domain.ProblemSpeedMath, Subject: domain.SubjectMath, Difficulty: 2, Question: "63 / 7", Answer: "9", Points: 8},
		},
		"game-number-sequence-1": {
			{ID: "ns-1-1", Type: domain.ProblemNumberSequence, Subject: domain.SubjectMath, Difficulty: 1, Question: "What comes next?", Sequence: []string{"2", "4", "6", "8", "?"}, Answer: "10", Points: 10},
			{ID: "ns-1-2", Type: domain.ProblemNumberSequence, Subject: domain.SubjectMath, Difficulty: 1, Question: "What comes next?", Sequence: []string{"5", "10", "15", "20", "?"}, Answer: "25", Points: 10},
			{ID: "ns-1-3", Type: domain.ProblemNumberSequence, Subject: domain.SubjectMath, Difficulty: 1, Question: "What comes next?", Sequence: []string{"1", "3", "5", "7", "?"}, Answer: "9", Points: 10},
		},
		"game-number-sequence-2": {
			{ID: "ns-2-1", Type: domain.ProblemNumberSequence, Subject: domain.SubjectMath, Difficulty: 2, Question: "What comes next?", Sequence: []string{"1", "2", "4", "8", "?"}, Answer: "16", Points: 15},
			{ID: "ns-2-2", Type: domain.ProblemNumberSequence, Subject: domain.SubjectMath, Difficulty: 2, Question: "What comes next?", Sequence: []string{"1", "1", "2", "3", "5", "?"}, Answer: "8", Points: 15},
			{ID: "ns-2-3", Type: domain.ProblemNumberSequence, Subject: domain.SubjectMath, Difficulty: 2, Question: "What comes next?", Sequence: []string{"81", "27", "9", "3", "?"}, Answer: "1", Points: 15},
		},
		"game-word-scramble-1": {
			{ID: "ws-1-1", Type: domain.ProblemWordScramble, Subject: domain.SubjectReading, Difficulty: 1, Question: "Unscramble this word", Scrambled: "TCA", Hint: "A furry pet that says meow", Answer: "CAT", Points: 8},
			{ID: "ws-1-2", Type: domain.ProblemWordScramble, Subject: domain.SubjectReading, Difficulty: 1, Question: "Unscramble this word", Scrambled: "OGD", Hint: "A loyal pet that barks", Answer: "DOG", Points: 8},
			{ID: "ws-1-3", Type: domain.ProblemWordScramble, Subject: domain.SubjectReading, Difficulty: 1, Question: "Unscramble this word", Scrambled: "NUS", Hint: "It shines during the day", Answer: "SUN", Points: 8},
		},
		"game-word-scramble-2": {
			{ID: "ws-2-1", Type: domain.ProblemWordScramble, Subject: domain.SubjectReading, Difficulty: 2, Question: "Unscramble this word", Scrambled: "NELPAT", Hint: "Earth is one", Answer: "PLANET", Points: 12},
			{ID: "ws-2-2", Type: domain.ProblemWordScramble, Subject: domain.SubjectReading, Difficulty: 2, Question: "Unscramble this word", Scrambled: "RAGDNE", Hint: "Where flowers grow", Answer: "GARDEN", Points: 12},
			{ID: "ws-2-3", Type: domain.ProblemWordScramble, Subject: domain.SubjectReading, Difficulty: 2, Question: "Unscramble this word", Scrambled: "OLOCSH", Hint: "Where you learn", Answer: "SCHOOL", Points: 12},
		},
		"game-pattern-recognition-1": {
			{ID: "pr-1-1", Type: domain.ProblemNumberSequence, Subject: domain.SubjectMath, Difficulty: 1, Question: "Which shape completes the pattern?", Sequence: []string{"circle", "square", "circle", "square", "?"}, Options: []string{"circle", "square", "triangle"}, Answer: "circle", Points: 12},
			{ID: "pr-1-2", Type: domain.ProblemNumberSequence, Subject: domain.SubjectMath, Difficulty: 1, Question: "Which shape completes the pattern?", Sequence: []string{"star", "star", "moon", "star", "star", "?"}, Options: []string{"star", "moon", "sun"}, Answer: "moon", Points: 12},
		},
	}
}

// SeedGames is the built-in mini-game catalog.
func SeedGames() []domain.Game {
	return []domain.Game{
		{ID: "game-1", Type: "speed-math", Title: "Speed Math Challenge", Subject: domain.SubjectMath, Difficulty: 1, TimeLimitSeconds: 60, TargetScore: 10, PointsPerCorrect: 5},
		{ID: "game-2", Type: "speed-math", Title: "Advanced Speed Math", Subject: domain.SubjectMath, Difficulty: 2, TimeLimitSeconds: 60, TargetScore: 15, PointsPerCorrect: 8},
		{ID: "game-3", Type: "number-sequence", Title: "Number Patterns", Subject: domain.SubjectMath, Difficulty: 1, TimeLimitSeconds: 90, TargetScore: 8, PointsPerCorrect: 10},
		{ID: "game-4", Type: "number-sequence", Title: "Complex Patterns", Subject: domain.SubjectMath, Difficulty: 2, TimeLimitSeconds: 120, TargetScore: 6, PointsPerCorrect: 15},
		{ID: "game-5", Type: "pattern-recognition", Title: "Shape Patterns", Subject: domain.SubjectMath, Difficulty: 1, TimeLimitSeconds: 75, TargetScore: 7, PointsPerCorrect: 12},
		{ID: "game-6", Type: "word-scramble", Title: "Word Scramble", Subject: domain.SubjectReading, Difficulty: 1, TimeLimitSeconds: 90, TargetScore: 8, PointsPerCorrect: 8},
		{ID: "game-7", Type: "word-scramble", Title: "Word Scramble Pro", Subject: domain.SubjectReading, Difficulty: 2, TimeLimitSeconds: 120, TargetScore: 6, PointsPerCorrect: 12},
	}
}
