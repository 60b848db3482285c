package lexicon

import "hearmeout/internal/domain"

// Frases por intencion en varios idiomas y escrituras, tal como se escriben.
func defaultIntentPhrases() map[domain.Intent][]string {
	return map[domain.Intent][]string{
		domain.IntentGreeting: {
			"hi", "hello", "hey", "yo", "hiya", "good morning", "good afternoon", "good evening",
			"नमस्ते", "नमस्कार", "నమస్తే", "నమస్కారం", "வணக்கம்", "നമസ്കാരം", "ನಮಸ್ಕಾರ",
			"নমস্কার", "નમસ્તે", "ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "ନମସ୍କାର", "سلام", "السلام عليكم",
			"hola", "bonjour", "hallo", "olá", "ciao", "こんにちは", "你好", "안녕하세요", "привет",
			"marhaba", "مرحبا",
		},
		domain.IntentThanks: {
			"thanks", "thank you", "ty", "thx", "gracias", "merci", "danke", "obrigado",
			"obrigada", "grazie", "धन्यवाद", "शुक्रिया", "ধন্যবাদ", "شكراً", "شكرا", "谢谢",
			"ありがとう", "감사합니다", "спасибо",
		},
		domain.IntentGoodbye: {
			"bye", "goodbye", "see you", "take care", "talk later", "good night", "adiós", "adios", "au revoir",
			"tschüss", "tchau", "अलविदा", "फिर मिलेंगे", "বিদায়", "খোদা হাফিজ", "مع السلامة",
			"再见", "さようなら", "안녕히 계세요", "пока",
		},
		domain.IntentHowAreYou: {
			"how are you", "how r u", "hru", "how do you feel", "what about you",
			"कैसे हो", "कैसे हैं", "तुम कैसे हो", "আপনি কেমন আছেন", "তুমি কেমন আছ",
			"كيف حالك", "كيفك", "como estás", "comment ça va", "wie gehts", "wie geht's",
			"como vai", "お元気ですか", "元気", "잘 지내", "你好吗",
		},
	}
}
