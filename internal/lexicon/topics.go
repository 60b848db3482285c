package lexicon

import "hearmeout/internal/domain"

// El orden de la lista es la prioridad de temas al elegir plantillas.
func defaultTopics() []TopicKeywords {
	return []TopicKeywords{
		{Topic: domain.TopicWork, Keywords: []string{
			"work", "job", "boss", "office", "career", "coworker", "co-worker", "colleague",
			"manager", "workplace", "promotion", "fired", "laid off", "overtime", "shift", "deadline",
		}},
		{Topic: domain.TopicFinancial, Keywords: []string{
			"money", "bills", "debt", "rent", "loan", "salary", "finances", "financial",
			"afford", "budget", "payment", "mortgage", "expenses", "savings", "paycheck", "emi",
		}},
		{Topic: domain.TopicAcademic, Keywords: []string{
			"school", "college", "university", "exam", "test", "grades", "homework", "study",
			"studies", "studying", "class", "teacher", "professor", "assignment", "semester", "thesis",
		}},
		{Topic: domain.TopicRelationship, Keywords: []string{
			"boyfriend", "girlfriend", "partner", "husband", "wife", "relationship", "breakup",
			"broke up", "dating", "marriage", "divorce", "my ex", "crush", "spouse", "fiance",
		}},
		{Topic: domain.TopicFamily, Keywords: []string{
			"family", "mom", "mother", "dad", "father", "parent", "brother", "sister",
			"sibling", "my son", "daughter", "kids", "children", "grandma", "grandpa", "relatives",
		}},
		{Topic: domain.TopicHealth, Keywords: []string{
			"health", "sick", "illness", "doctor", "hospital", "pain", "sleep", "insomnia",
			"headache", "diagnosis", "medication", "medicine", "therapy", "disease", "injury",
		}},
		{Topic: domain.TopicFuture, Keywords: []string{
			"future", "tomorrow", "next year", "plans", "goals", "someday", "retirement",
			"what will happen", "what's next",
		}},
		{Topic: domain.TopicSelfEsteem, Keywords: []string{
			"worthless", "useless", "failure", "ugly", "stupid", "not good enough", "hate myself",
			"confidence", "insecure", "self-esteem", "self esteem", "loser", "inadequate",
		}},
		{Topic: domain.TopicLoneliness, Keywords: []string{
			"lonely", "alone", "isolated", "no friends", "nobody", "no one to talk",
		}},
	}
}
