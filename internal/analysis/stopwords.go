package analysis

// defaultStopWords are high-frequency Russian function words excluded
// from the word ranking. A caller can supply its own set for a
// different corpus language.
var defaultStopWords = []string{
	"а", "да", "же", "за", "и", "из", "или", "к", "как", "на", "не",
	"ну", "о", "по", "про", "с", "со", "то", "у", "я", "мы", "ты",
	"вы", "он", "она", "оно", "они", "мне", "меня", "мной", "тебя",
	"тебе", "тобой", "нас", "нам", "вас", "вам", "его", "ее", "их",
	"мой", "моя", "мои", "твой", "твоя", "твои", "наш", "наша",
	"наши", "ваш", "ваша", "ваши", "это", "эта", "эти", "этот",
	"тот", "та", "те", "там", "тут", "здесь", "вот", "ли", "бы",
	"быть", "есть", "были", "был", "была", "будет", "буду",
	"будешь", "будем", "будете", "еще", "ещё", "уже", "если",
	"чтобы", "что", "кто", "когда", "где", "почему", "потом",
	"тогда", "сейчас", "сегодня", "вчера", "завтра", "очень",
	"просто", "вообще", "ладно", "ага", "в", "тяк", "так",
}

// DefaultStopWords returns a fresh copy of the default stop-word set
func DefaultStopWords() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultStopWords))
	for _, word := range defaultStopWords {
		set[word] = struct{}{}
	}
	return set
}
