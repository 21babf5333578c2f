package lexicon

// BaseTables returns a fresh copy of the built-in curated tables.
func BaseTables() Tables {
	return Tables{
		Emoji:    NewTable(baseEmoji...),
		English:  NewTable(baseEnglish...),
		Hinglish: NewTable(baseHinglish...),
	}
}

var baseEmoji = []Entry{
	{"😂", "laughing hard"},
	{"🔥", "amazing"},
	{"💯", "perfect"},
	{"😭", "crying"},
	{"🤣", "laughing very hard"},
	{"❤️", "love"},
	{"🙏", "thank you"},
	{"👍", "good"},
	{"👌", "excellent"},
	{"😍", "lovely"},
	{"😊", "happy"},
	{"🎉", "celebrating"},
	{"🤔", "thinking"},
	{"😎", "cool"},
	{"💀", "dying of laughter"},
	{"💔", "heartbroken"},
	{"✨", "sparkling"},
	{"🥺", "pleading"},
	{"🙄", "sarcastic"},
	{"🥵", "hot"},
	{"🥶", "cold"},
	{"😡", "angry"},
	{"🤮", "disgusting"},
	{"👀", "watching closely"},
	{"🍕", "pizza"},
	{"💪", "strong"},
	{"😬", "awkward"},
	{"🏆", "trophy"},
	{"🙅", "no"},
	{"🧠", "smart"},
	{"🍔", "burger"},
	{"🐐", "greatest of all time"},
	{"🎯", "on point"},
	{"👏", "applause"},
	{"🤨", "skeptical"},
	{"🧢", "lie"},
	{"😳", "embarrassed"},
	{"😒", "unimpressed"},
	{"😅", "nervous laugh"},
	{"🙌", "praise"},
	{"🤯", "mind blown"},
	{"🎧", "music"},
	{"🤳", "selfie"},
	{"💎", "precious"},
	{"🔝", "top"},
	{"🚩", "red flag"},
	{"💬", "message"},
	{"💡", "idea"},
	{"📈", "growth"},
	{"❤", "love"},
	{"💛", "love"},
	{"🎭", "drama"},
	{"📲", "phone"},
	{"😩", "exhausted"},
	{"😏", "smug"},
	{"⚡", "fast"},
	{"🏅", "medal"},
	{"💅", "confident"},
	{"🎤", "mic drop"},
	{"☕", "coffee"},
	{"👑", "royalty"},
	{"🌙", "night"},
	{"💸", "money"},
	{"🫶", "love"},
	{"😶", "speechless"},
	{"🫠", "overwhelmed"},
	{"🔍", "search"},
	{"😱", "shocked"},
	{"📺", "tv"},
	{"🚀", "skyrocketing"},
	{"🚫", "no"},
	{"🙃", "sarcastic"},
	{"😮", "surprised"},
	{"💨", "speed"},
	{"\U0001f576", "cool"},
	{"🎢", "rollercoaster"},
	{"🐢", "slow"},
	{"🌟", "star"},
	{"😫", "tired"},
	{"✌", "peace"},
	{"\U0001f5d1", "trash"},
	{"🔓", "unlock"},
	{"📚", "books"},
	{"😔", "sad"},
	{"🤷", "unsure"},
	{"💤", "sleep"},
	{"🎓", "graduate"},
	{"🍟", "fries"},
	{"⚠", "warning"},
	{"✅", "check"},
	{"🚨", "alarm"},
	{"🚧", "construction"},
}

var baseEnglish = []Entry{
	{"fire", "amazing"},
	{"slaps", "tastes great"},
	{"lit", "exciting"},
	{"dope", "excellent"},
	{"sick", "impressive"},
	{"bruh", "brother"},
	{"cap", "lie"},
	{"bet", "agreement"},
	{"sus", "suspicious"},
	{"ghost", "ignore"},
	{"salty", "bitter"},
	{"clout", "fame"},
	{"flex", "show off"},
	{"woke", "aware"},
	{"tea", "gossip"},
	{"vibe", "atmosphere"},
	{"yeet", "throw"},
	{"simp", "overly attentive"},
	{"incel", "involuntary celibate"},
	{"thirsty", "eager for attention"},
	{"sheesh", "impressive"},
	{"drip", "stylish clothing"},
	{"bussin", "very tasty"},
	{"lowkey", "secretly"},
	{"highkey", "openly"},
	{"goat", "greatest of all time"},
	{"mid", "mediocre"},
	{"movie", "cinematic quality"},
	{"wildin", "behaving wildly"},
	{"yikes", "embarrassing"},
	{"valid", "legitimate"},
	{"clutch", "critical success"},
	{"cold", "excellent"},
	{"no cap", "no lie"},
	{"built different", "exceptional"},
	{"rent free", "occupying mind persistently"},
	{"touch grass", "go outside"},
	{"left no crumbs", "outperformed others"},
	{"say less", "i understand"},
	{"giving main character", "standing out confidently"},
	{"keep the same energy", "maintain the same attitude"},
	{"understood the assignment", "performed exceptionally"},
	{"vibes", "atmosphere"},
	{"w", "win"},
	{"l", "loss"},
	{"chief", "leader"},
}

var baseHinglish = []Entry{
	{"bhai", "brother"},
	{"bro", "brother"},
	{"ye", "this"},
	{"wo", "that"},
	{"kya", "what"},
	{"kaise", "how"},
	{"kyu", "why"},
	{"accha", "good"},
	{"mast", "excellent"},
	{"jhakaas", "fantastic"},
	{"badiya", "good"},
	{"yaar", "friend"},
	{"dost", "friend"},
	{"pagal", "crazy"},
	{"nashta", "snack"},
	{"sahi", "correct"},
	{"ganda", "bad"},
	{"behen", "sister"},
	{"karo", "do"},
	{"hai", "is"},
	{"tha", "was"},
	{"thi", "was"},
	{"hain", "are"},
	{"op", "outstanding"},
	{"bhayanak", "scary"},
	{"zabardast", "terrific"},
	{"kamal", "wonderful"},
	{"bakchodi", "nonsense"},
	{"majak", "joke"},
	{"jugaad", "workaround"},
	{"faadu", "awesome"},
	{"bawal", "extraordinary"},
	{"bindaas", "carefree"},
	{"bhaiya", "brother"},
	{"behenji", "sister"},
}
