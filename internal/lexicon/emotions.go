package lexicon

import "hearmeout/internal/domain"

// El orden de Keywords importa: el clasificador recorre la lista en este orden
// y, con la politica "last", el ultimo termino con nivel asignado fija la intensidad.
func defaultCategories() []Category {
	return []Category{
		{
			Emotion: domain.EmotionHappiness,
			Keywords: keywords(
				"happy", "glad", "good", "great", "joy", "joyful", "excited", "wonderful",
				"amazing", "grateful", "thankful", "proud", "relieved", "calm", "better",
				"fine", "awesome", "fantastic", "peaceful", "content", "cheerful",
				"delighted", "ecstatic", "thrilled",
			),
			Phrases: phrases(
				"feeling good", "feel great", "so happy", "really happy", "good news",
				"best day", "feeling better", "feel better",
			),
			Tiers: tiers(
				[]string{"ecstatic", "thrilled", "amazing", "fantastic", "wonderful", "awesome"},
				[]string{"happy", "excited", "joyful", "grateful", "proud", "great", "delighted", "joy", "cheerful", "thankful"},
				[]string{"good", "fine", "calm", "content", "better", "relieved", "glad", "peaceful"},
			),
		},
		{
			Emotion: domain.EmotionSadness,
			Keywords: keywords(
				"sad", "unhappy", "depressed", "down", "lonely", "hopeless", "miserable",
				"crying", "cry", "cried", "tears", "heartbroken", "empty", "grief",
				"grieving", "lost", "hurt", "upset", "gloomy", "worthless", "numb",
				"devastated",
			),
			Phrases: phrases(
				"feel like crying", "feeling down", "feel down", "miss them", "miss her",
				"miss him", "no one cares", "broke up", "feel empty", "let down",
			),
			Tiers: tiers(
				[]string{"depressed", "hopeless", "heartbroken", "miserable", "worthless", "devastated"},
				[]string{"sad", "unhappy", "crying", "cried", "tears", "grief", "grieving", "lonely", "empty", "numb", "upset", "cry"},
				[]string{"down", "gloomy", "lost", "hurt"},
			),
		},
		{
			Emotion: domain.EmotionAnxiety,
			Keywords: keywords(
				"anxious", "anxiety", "worried", "worry", "worrying", "nervous", "scared",
				"afraid", "fear", "panic", "panicking", "uneasy", "restless", "tense",
				"terrified", "dread", "overthinking", "paranoid", "jittery",
			),
			Phrases: phrases(
				"panic attack", "can't stop worrying", "can't breathe", "heart racing",
				"what if", "on edge", "freaking out",
			),
			Tiers: tiers(
				[]string{"panic", "panicking", "terrified", "paranoid", "dread"},
				[]string{"anxious", "anxiety", "scared", "afraid", "fear", "nervous", "worried"},
				[]string{"worry", "worrying", "uneasy", "restless", "tense", "jittery", "overthinking"},
			),
		},
		{
			Emotion: domain.EmotionAnger,
			Keywords: keywords(
				"angry", "mad", "furious", "annoyed", "irritated", "frustrated", "rage",
				"hate", "pissed", "livid", "resentful", "outraged", "bitter",
			),
			Phrases: phrases(
				"fed up", "so angry", "sick of", "drives me crazy", "can't stand",
				"lost my temper",
			),
			Tiers: tiers(
				[]string{"furious", "rage", "livid", "outraged", "hate"},
				[]string{"angry", "mad", "pissed", "resentful", "bitter", "frustrated"},
				[]string{"annoyed", "irritated"},
			),
		},
		{
			Emotion: domain.EmotionStress,
			Keywords: keywords(
				"stressed", "stressing", "stress", "stressful", "overwhelmed", "pressure",
				"exhausted", "burnout", "tired", "swamped", "overworked", "hectic",
				"drained", "busy",
			),
			Phrases: phrases(
				"so stressed", "stressed about", "stressed out", "stressing me out",
				"too much", "burnt out", "burned out", "under pressure", "can't cope",
				"so much to do",
			),
			Tiers: tiers(
				[]string{"overwhelmed", "burnout", "exhausted", "overworked", "drained"},
				[]string{"stressed", "stressing", "stressful", "pressure", "swamped", "hectic"},
				[]string{"stress", "tired", "busy"},
			),
		},
		{
			Emotion: domain.EmotionConfusion,
			Keywords: keywords(
				"confused", "confusing", "unsure", "uncertain", "puzzled", "torn",
				"undecided", "clueless", "conflicted", "directionless", "indecisive",
			),
			Phrases: phrases(
				"don't know what to do", "not sure", "what should i do", "makes no sense",
				"can't decide", "mixed feelings", "don't understand",
			),
			Tiers: tiers(
				[]string{"conflicted", "directionless", "clueless"},
				[]string{"confused", "torn", "uncertain", "puzzled"},
				[]string{"unsure", "undecided", "confusing", "indecisive"},
			),
		},
	}
}

// Frases que niegan un estado positivo. Se evaluan antes del puntaje porque
// "not good" contiene la palabra clave "good".
func defaultNegativeOverrides() []string {
	return []string{
		"not good", "not okay", "not ok", "not great", "not fine", "not well",
		"not doing well", "not happy", "not feeling good", "not feeling well",
		"having a hard time", "having a rough time", "hard time", "struggling",
		"not the best", "could be better",
	}
}
