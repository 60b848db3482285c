package service

import "hearmeout/internal/domain"

const defaultLocaleKey = "en"

// Cada emocion tiene su rama general; los temas sin banco caen ahi de forma explicita.
var emotionTemplates = map[domain.Emotion]map[domain.Topic][]string{
	domain.EmotionStress: {
		domain.TopicWork: {
			"Work pressure can pile up fast. What part of your job is weighing on you the most right now?",
			"It sounds like work is asking a lot of you. Is there one task we could break into smaller pieces together?",
			"Juggling work demands is exhausting. What would make tomorrow at work feel a little lighter?",
		},
		domain.TopicFinancial: {
			"Money worries can follow you everywhere, even into the night. What feels most urgent about your finances right now?",
			"Financial stress is heavy to carry alone. Would it help to list what you owe and what can wait?",
			"Worrying about money is draining. Which expense is on your mind the most today?",
		},
		domain.TopicAcademic: {
			"Studies can feel relentless when everything is due at once. Which deadline worries you the most?",
			"Exam and class pressure is real. What would a realistic study plan for today look like?",
			"It sounds like school is stretching you thin. What subject is taking the most out of you?",
		},
		domain.TopicHealth: {
			"When your body is not cooperating, everything else feels harder. How have you been sleeping lately?",
			"Health worries add a layer of stress on top of everything. Have you been able to talk to anyone about it?",
		},
		domain.TopicFamily: {
			"Family expectations can be a lot to hold. What is happening at home that feels heaviest?",
			"Stress at home is hard because there is no place to step away. Who in your family do you feel safest with?",
		},
		domain.TopicRelationship: {
			"Relationship tension can make everything feel more stressful. What has been happening between you two?",
			"It sounds like things with your partner are adding to the pressure. What do you wish they understood?",
		},
		domain.TopicFuture: {
			"Thinking about the future can feel overwhelming when there are so many unknowns. What is one thing you can control this week?",
			"Planning ahead under pressure is tough. Which part of the future feels most uncertain to you?",
		},
		domain.TopicGeneral: {
			"That sounds like a lot to handle. What is the biggest source of stress for you right now?",
			"I can hear how much pressure you are under. What would help you take one small breath of relief today?",
			"Feeling stretched thin is exhausting. What is one thing you could set down, even for an hour?",
		},
	},
	domain.EmotionSadness: {
		domain.TopicRelationship: {
			"Heartbreak hurts in a very real way. What do you miss most right now?",
			"It is painful when a relationship changes. How are you taking care of yourself through this?",
			"Losing closeness with someone you love is hard. Would you like to tell me what happened?",
		},
		domain.TopicLoneliness: {
			"Feeling alone can be so heavy. I am glad you reached out here. When did you last feel connected to someone?",
			"Loneliness is painful, and you do not have to sit with it silently. Is there someone you could message today?",
		},
		domain.TopicFamily: {
			"Sadness around family runs deep. What has been going on at home?",
			"Family pain can feel very personal. Who do you wish you could talk to about this?",
		},
		domain.TopicWork: {
			"Feeling down about work can drain the whole day. What happened that left you feeling this way?",
			"It sounds like work has been discouraging lately. What part of it hurts the most?",
		},
		domain.TopicSelfEsteem: {
			"I am sorry you are being so hard on yourself. What would you say to a friend who felt this way?",
			"Those thoughts about yourself sound painful. Can you name one thing you did today that took effort?",
		},
		domain.TopicHealth: {
			"Dealing with health struggles can bring a lot of sadness. How are you feeling in your body today?",
			"Being unwell takes an emotional toll too. Who is helping you through this?",
		},
		domain.TopicGeneral: {
			"I am really sorry you are feeling this way. Would you like to share what has been weighing on you?",
			"It sounds like things are heavy right now. I am here with you. What has been the hardest part?",
			"Sadness can make everything feel slower. What is one gentle thing you could do for yourself today?",
		},
	},
	domain.EmotionAnxiety: {
		domain.TopicWork: {
			"Work worries can keep your mind spinning. What is the scenario you keep replaying?",
			"It sounds like work has you on edge. What would feel like a safe next step?",
		},
		domain.TopicAcademic: {
			"Exam nerves are very common, and they still feel awful. What part of the exam worries you most?",
			"Anxiety about studies can make it hard to focus. Would a short breathing break before you study help?",
		},
		domain.TopicHealth: {
			"Health anxiety can be really frightening. Have you been able to talk to a doctor about what worries you?",
			"Worrying about your health is exhausting. What symptom or thought is bothering you most right now?",
		},
		domain.TopicFuture: {
			"Not knowing what comes next can feel scary. Which 'what if' keeps coming back?",
			"Worrying about the future pulls you away from today. What is one thing that is okay right now?",
		},
		domain.TopicFinancial: {
			"Money anxiety can feel endless. What is the specific worry that keeps coming up?",
			"Financial fears are hard to quiet. Would it help to look at just this month instead of everything at once?",
		},
		domain.TopicRelationship: {
			"Worrying about a relationship can be consuming. What are you afraid might happen?",
			"It sounds like you feel uncertain about where things stand. What would reassure you?",
		},
		domain.TopicGeneral: {
			"That anxious feeling can be overwhelming. Try taking a slow breath with me. What is on your mind?",
			"It sounds like your mind is racing. What is the worry that feels loudest right now?",
			"Anxiety is exhausting to carry. What usually helps you feel a little more grounded?",
		},
	},
	domain.EmotionAnger: {
		domain.TopicWork: {
			"It sounds like something at work really crossed a line. What happened?",
			"Feeling frustrated with work is completely understandable. What would you like to change?",
		},
		domain.TopicFamily: {
			"Family conflict can stir up strong anger. What was said or done that hurt?",
			"It is hard when the people closest to you make you this angry. What do you need from them?",
		},
		domain.TopicRelationship: {
			"Anger in a relationship often means something important was hurt. What happened between you?",
			"It sounds like you feel let down by your partner. What would feel fair to you?",
		},
		domain.TopicGeneral: {
			"Your anger makes sense. Something clearly mattered to you. What happened?",
			"It sounds really frustrating. Would it help to talk through what set this off?",
			"Strong anger is a signal worth listening to. What do you think it is telling you?",
		},
	},
	domain.EmotionConfusion: {
		domain.TopicFuture: {
			"Not knowing which direction to take is unsettling. What options are you weighing?",
			"The future can feel foggy at times. What matters most to you as you decide?",
		},
		domain.TopicRelationship: {
			"Mixed feelings about someone are confusing. What pulls you in each direction?",
			"It sounds like you are unsure where things stand. What would help you get clarity?",
		},
		domain.TopicAcademic: {
			"Feeling lost in your studies happens to a lot of people. Which part is not making sense yet?",
			"It is okay to feel unsure about your academic path. What made you start questioning it?",
		},
		domain.TopicWork: {
			"Feeling unsure about work decisions is hard. What choice is in front of you?",
			"It sounds like your career path feels unclear. What would you do if you knew you could not fail?",
		},
		domain.TopicGeneral: {
			"It is okay not to have it all figured out. Let us untangle it together. What feels most unclear?",
			"Feeling confused can be frustrating. Would it help to talk through your options one at a time?",
			"Sometimes saying things out loud makes them clearer. What is the question on your mind?",
		},
	},
	domain.EmotionHappiness: {
		domain.TopicWork: {
			"That is great news about work! What made it go so well?",
			"It is wonderful to hear things are going well at work. How are you celebrating?",
		},
		domain.TopicRelationship: {
			"It is lovely to hear about this connection. What do you appreciate most about them?",
			"That sounds really special. How does it feel to share this with someone?",
		},
		domain.TopicAcademic: {
			"Congratulations on your progress with your studies! What helped you get there?",
			"That is a real achievement. How do you feel about it?",
		},
		domain.TopicHealth: {
			"I am so glad you are feeling better. What has been helping you?",
			"Good health news is worth celebrating. How are you feeling today?",
		},
		domain.TopicGeneral: {
			"I am glad to hear that. What has been bringing you joy lately?",
			"That is wonderful. Tell me more about what made today feel good.",
			"It is great to hear you are doing well. What would you like to talk about?",
		},
	},
}

var intensityModifiers = map[domain.Intensity]string{
	domain.IntensityHigh: " This sounds particularly intense, so please be gentle with yourself.",
	domain.IntensityLow:  " Even small feelings deserve attention.",
}

var continuationPrefixes = []string{
	"Thank you for sharing more about that. ",
	"I appreciate you telling me more. ",
	"Thanks for opening up a bit more. ",
}

var continuationMarkers = []string{"because", "since", "actually", "also", "but", "well", "and then"}

const continuationMaxWords = 5

var intentReplies = map[domain.Intent]map[string][]string{
	domain.IntentGreeting: {
		"en":    {"Hi! I'm here with you. How are you feeling today?"},
		"hi-IN": {"नमस्ते! मैं आपकी बात सुनने के लिए यहाँ हूँ। आज आप कैसा महसूस कर रहे हैं?"},
		"es-ES": {"¡Hola! Estoy aquí para escucharte. ¿Cómo te sientes hoy?"},
		"fr-FR": {"Bonjour ! Je suis là pour t'écouter. Comment te sens-tu aujourd'hui ?"},
		"de-DE": {"Hallo! Ich bin da, um dir zuzuhören. Wie fühlst du dich heute?"},
		"pt-PT": {"Olá! Estou aqui para te ouvir. Como te sentes hoje?"},
		"ja-JP": {"こんにちは。あなたの話を聞くためにここにいます。今日はどんな気分ですか？"},
		"ko-KR": {"안녕하세요. 당신의 이야기를 듣고 있어요. 오늘 기분이 어떠세요?"},
		"zh-CN": {"你好！我在这里倾听你。你今天感觉怎么样？"},
		"ar-SA": {"مرحبًا! أنا هنا للاستماع إليك. كيف تشعر اليوم؟"},
		"ru-RU": {"Привет! Я здесь, чтобы тебя выслушать. Как ты себя чувствуешь сегодня?"},
	},
	domain.IntentThanks: {
		"en":    {"You're welcome. Anything else on your mind?"},
		"hi-IN": {"आपका स्वागत है। क्या कुछ और साझा करना चाहेंगे?"},
		"es-ES": {"De nada. ¿Hay algo más que quieras compartir?"},
		"fr-FR": {"Avec plaisir. Tu veux parler d'autre chose ?"},
		"de-DE": {"Gern geschehen. Möchtest du noch über etwas sprechen?"},
		"pt-PT": {"De nada. Queres falar de mais alguma coisa?"},
		"ja-JP": {"どういたしまして。他に話したいことはありますか？"},
		"ko-KR": {"천만에요. 다른 이야기해보고 싶으신가요?"},
		"zh-CN": {"不客气。还有其他想说的吗？"},
		"ar-SA": {"على الرحب والسعة. هل هناك شيء آخر تود الحديث عنه؟"},
		"ru-RU": {"Пожалуйста. Хочешь обсудить что-то еще?"},
	},
	domain.IntentGoodbye: {
		"en":    {"Take care. I'm here whenever you need."},
		"hi-IN": {"अपना ख्याल रखें। जब भी ज़रूरत हो, मैं यहाँ हूँ।"},
		"es-ES": {"Cuídate. Estoy aquí cuando me necesites."},
		"fr-FR": {"Prends soin de toi. Je suis là quand tu as besoin."},
		"de-DE": {"Pass auf dich auf. Ich bin da, wenn du mich brauchst."},
		"pt-PT": {"Cuida-te. Estou aqui sempre que precisares."},
		"ja-JP": {"お大事に。必要なときはいつでもいます。"},
		"ko-KR": {"몸 조심하세요. 필요할 때 언제든 있어요."},
		"zh-CN": {"保重。需要时我一直在。"},
		"ar-SA": {"اعتنِ بنفسك. أنا هنا متى ما احتجت."},
		"ru-RU": {"Береги себя. Я рядом, когда понадоблюсь."},
	},
	domain.IntentHowAreYou: {
		"en":    {"Thanks for asking. I'm here for you. How are you feeling?"},
		"hi-IN": {"पूछने के लिए धन्यवाद। मैं आपके साथ हूँ। आप कैसा महसूस कर रहे हैं?"},
		"es-ES": {"Gracias por preguntar. Estoy aquí para ti. ¿Cómo te sientes?"},
		"fr-FR": {"Merci de demander. Je suis là pour toi. Comment te sens-tu ?"},
		"de-DE": {"Danke der Nachfrage. Ich bin für dich da. Wie fühlst du dich?"},
		"pt-PT": {"Obrigado por perguntar. Estou aqui para ti. Como te sentes?"},
		"ja-JP": {"聞いてくれてありがとう。私はあなたのためにここにいます。今はどんな気持ち？"},
		"ko-KR": {"물어봐줘서 고마워요. 저는 당신을 위해 여기 있어요. 지금 기분이 어떠세요?"},
		"zh-CN": {"谢谢关心。我在这里陪着你。你现在感觉如何？"},
		"ar-SA": {"شكرًا لسؤالك. أنا هنا من أجلك. كيف تشعر؟"},
		"ru-RU": {"Спасибо, что спросил(а). Я здесь для тебя. Как ты себя чувствуешь?"},
	},
}

// Los mensajes de crisis nunca se traducen automaticamente.
var crisisMessages = map[string]string{
	"en": "I'm really concerned about what you've shared, and I'm glad you told me. You deserve support right now. " +
		"Please reach out to someone immediately: call or text 988 (Suicide & Crisis Lifeline, US), text HOME to 741741 (Crisis Text Line), " +
		"or call AASRA at +91 91529 87821 (India, 24/7). If you are in immediate danger, contact your local emergency services.",
	"hi-IN": "आपने जो साझा किया है उससे मुझे आपकी बहुत चिंता है, और मुझे खुशी है कि आपने मुझे बताया। " +
		"कृपया अभी किसी से संपर्क करें: राष्ट्रीय हेल्पलाइन 15399, Tele-MANAS 14416, या AASRA +91 91529 87821 (24/7)। " +
		"अगर आप तुरंत खतरे में हैं, तो 112 पर कॉल करें।",
	"es-ES": "Me preocupa mucho lo que compartes, y me alegra que me lo hayas contado. Mereces apoyo ahora mismo. " +
		"Por favor, llama a la Línea 024 (atención a la conducta suicida) o al Teléfono de la Esperanza 717 003 717. " +
		"Si estás en peligro inmediato, llama al 112.",
}

var apologies = map[string]string{
	"en":    "I'm here to listen and support you. Please try again.",
	"hi-IN": "मैं आपकी बात सुनने और सहायता करने के लिए यहाँ हूँ। कृपया फिर से कोशिश करें।",
	"te-IN": "నేను మీ మాట వినడానికి మరియు మద్దతు ఇవ్వడానికి ఇక్కడ ఉన్నాను. దయచేసి మళ్లీ ప్రయత్నించండి.",
	"ta-IN": "நான் உங்களைக் கேட்கவும் ஆதரிக்கவும் இங்கே இருக்கிறேன். தயவுசெய்து மீண்டும் முயற்சிக்கவும்.",
	"es-ES": "Estoy aquí para escucharte y apoyarte. Por favor, inténtalo de nuevo.",
	"fr-FR": "Je suis là pour t'écouter et te soutenir. Réessaie, s'il te plaît.",
	"de-DE": "Ich bin hier, um dir zuzuhören und dich zu unterstützen. Bitte versuche es noch einmal.",
}

// CrisisMessage devuelve el mensaje fijo de crisis del idioma; ingles si no hay uno propio.
func CrisisMessage(locale string) string {
	return lookupLocalized(crisisMessages, locale)
}

// ApologyMessage devuelve la disculpa generica del idioma.
func ApologyMessage(locale string) string {
	return lookupLocalized(apologies, locale)
}

func lookupLocalized(table map[string]string, locale string) string {
	if key, ok := resolveLocaleKey(locale, table); ok {
		return table[key]
	}
	return table[defaultLocaleKey]
}
