package assistant

const HelpMessage = `Welcome to Morocco Travel Assistant! 🇲🇦

I can help you find routes between:
- Casablanca ⇔ Rabat
- Casablanca ⇔ Marrakech
- Rabat ⇔ Tangier
- Casablanca ⇔ El Jadida

Try asking: "How can I travel from Casablanca to Rabat?"
أو: "كيف يمكنني السفر من الدار البيضاء إلى الرباط؟"
`

const (
	headerFormat = "🚗 Travel options from %s to %s:\n\n"

	carSectionTitle     = "🚘 By Car:\n"
	carEstimateFormat   = "⏱️ Estimated time: %.1f hours\n"
	carTrafficTitle     = "🚦 Traffic conditions:\n"
	carTrafficRowFormat = "- %s\n"

	trainSectionTitle    = "🚂 By Train:\n"
	trainCarrierFormat   = "Next available %s:\n"
	trainDepartureFormat = "- 🕒 Departure: %s\n"
	trainArrivalFormat   = "- 🏁 Arrival: %s\n"
	trainSeatsFormat     = "- 💺 Available seats: %d\n"
)
