package lexicon

// Lista separada del resto del lexico: se evalua primero y anula todo lo demas.
func defaultCrisisPhrases() []string {
	return []string{
		"kill myself", "killing myself", "want to die", "wanna die", "want to be dead",
		"end my life", "ending my life", "end it all", "take my life", "hurt myself",
		"harm myself", "self harm", "self-harm", "cut myself", "cutting myself",
		"suicide", "suicidal", "overdose", "no reason to live", "better off dead",
		"don't want to live", "do not want to live", "not worth living",
		"आत्महत्या", "मरना चाहता", "मरना चाहती", "खुद को नुकसान",
		"quiero morir", "suicidarme", "matarme", "quitarme la vida",
	}
}
