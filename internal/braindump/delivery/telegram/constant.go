package telegram

const (
	msgWelcome = "👋 ברוכים הבאים ל-*Brain Dump*!\n\n" +
		"שלחו לי הודעה חופשית בעברית או באנגלית ואני:\n" +
		"• 📅 אקבע אירועים ביומן\n" +
		"• ⏰ אגדיר תזכורות ושעונים מעוררים\n" +
		"• 📝 אשמור פתקים ורשימות קניות\n\n" +
		"_לדוגמה: \"קבע פגישה עם דנה מחר בשלוש\"_"

	msgHelp = "*איך משתמשים:*\n\n" +
		"פשוט כותבים מה שצריך, לדוגמה:\n" +
		"`תזכיר לי להתקשר לרופא מחר בעשר`\n" +
		"`תוסיף חלב ולחם לרשימת הקניות`\n\n" +
		"אני אבין לבד מה התכוונתם."

	msgNeedsRegistration = "אני עדיין לא מכיר אותך. כדי להתחיל, הירשמו כאן:"

	msgProcessingFailed = "משהו השתבש בעיבוד ההודעה. נסו שוב בעוד רגע."

	msgVoiceUnsupported = "אני מבין רק טקסט כאן. שלחו את ההודעה כטקסט, או השתמשו בקיצור בטלפון להקלטה."
)
