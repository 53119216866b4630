package mapping

// Verified IPC → BNS section mappings, organized by offense category.
// Sources: Ministry of Home Affairs, Official Gazette of India.
var table = map[string]Mapping{
	// Offenses Against State
	"121":  {IPCSection: "121", BNSSection: "BNS 147", Notes: "Waging, or attempting to wage war, against the Government of India", Category: "Offenses Against State", Source: "Official Gazette"},
	"124a": {IPCSection: "124A", BNSSection: "BNS 152", Notes: "Sedition reframed as acts endangering sovereignty, unity and integrity of India", Category: "Offenses Against State", Source: "Official Gazette"},

	// Offenses Against Public Tranquility
	"141":  {IPCSection: "141", BNSSection: "BNS 189", Notes: "Unlawful assembly", Category: "Offenses Against Public Tranquility", Source: "Official Gazette"},
	"147":  {IPCSection: "147", BNSSection: "BNS 191", Notes: "Punishment for rioting", Category: "Offenses Against Public Tranquility", Source: "Official Gazette"},
	"153a": {IPCSection: "153A", BNSSection: "BNS 196", Notes: "Promoting enmity between different groups", Category: "Offenses Against Public Tranquility", Source: "Official Gazette"},

	// Offenses Against Human Body
	"299":  {IPCSection: "299", BNSSection: "BNS 100", Notes: "Culpable homicide - definition", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"300":  {IPCSection: "300", BNSSection: "BNS 101", Notes: "Murder - definition", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"302":  {IPCSection: "302", BNSSection: "BNS 103", Notes: "Punishment for murder", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"304":  {IPCSection: "304", BNSSection: "BNS 105", Notes: "Punishment for culpable homicide not amounting to murder", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"304a": {IPCSection: "304A", BNSSection: "BNS 106", Notes: "Causing death by negligence", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"304b": {IPCSection: "304B", BNSSection: "BNS 80", Notes: "Dowry death", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"307":  {IPCSection: "307", BNSSection: "BNS 109", Notes: "Attempt to murder", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"323":  {IPCSection: "323", BNSSection: "BNS 115", Notes: "Punishment for voluntarily causing hurt", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"324":  {IPCSection: "324", BNSSection: "BNS 118", Notes: "Voluntarily causing hurt by dangerous weapons or means", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"325":  {IPCSection: "325", BNSSection: "BNS 117", Notes: "Punishment for voluntarily causing grievous hurt", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"341":  {IPCSection: "341", BNSSection: "BNS 126", Notes: "Punishment for wrongful restraint", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"342":  {IPCSection: "342", BNSSection: "BNS 127", Notes: "Punishment for wrongful confinement", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"359":  {IPCSection: "359", BNSSection: "BNS 137", Notes: "Kidnapping", Category: "Offenses Against Human Body", Source: "Official Gazette"},
	"363":  {IPCSection: "363", BNSSection: "BNS 137", Notes: "Punishment for kidnapping", Category: "Offenses Against Human Body", Source: "Official Gazette"},

	// Offenses Against Women
	"354":  {IPCSection: "354", BNSSection: "BNS 74", Notes: "Assault or criminal force to woman with intent to outrage her modesty", Category: "Offenses Against Women", Source: "Official Gazette"},
	"375":  {IPCSection: "375", BNSSection: "BNS 63", Notes: "Rape - definition", Category: "Offenses Against Women", Source: "Official Gazette"},
	"376":  {IPCSection: "376", BNSSection: "BNS 64", Notes: "Punishment for rape", Category: "Offenses Against Women", Source: "Official Gazette"},
	"498a": {IPCSection: "498A", BNSSection: "BNS 85", Notes: "Cruelty by husband or relatives of husband", Category: "Offenses Against Women", Source: "Official Gazette"},
	"509":  {IPCSection: "509", BNSSection: "BNS 79", Notes: "Word, gesture or act intended to insult the modesty of a woman", Category: "Offenses Against Women", Source: "Official Gazette"},

	// Offenses Against Property
	"378": {IPCSection: "378", BNSSection: "BNS 303", Notes: "Theft - definition, snatching added", Category: "Offenses Against Property", Source: "Official Gazette"},
	"379": {IPCSection: "379", BNSSection: "BNS 303", Notes: "Punishment for theft", Category: "Offenses Against Property", Source: "Official Gazette"},
	"392": {IPCSection: "392", BNSSection: "BNS 309", Notes: "Punishment for robbery", Category: "Offenses Against Property", Source: "Official Gazette"},
	"395": {IPCSection: "395", BNSSection: "BNS 310", Notes: "Punishment for dacoity", Category: "Offenses Against Property", Source: "Official Gazette"},

	// Criminal Breach of Trust & Cheating
	"406": {IPCSection: "406", BNSSection: "BNS 316", Notes: "Punishment for criminal breach of trust", Category: "Criminal Breach of Trust", Source: "Official Gazette"},
	"415": {IPCSection: "415", BNSSection: "BNS 318", Notes: "Cheating - definition", Category: "Cheating", Source: "Official Gazette"},
	"420": {IPCSection: "420", BNSSection: "BNS 318", Notes: "Cheating and dishonestly inducing delivery of property", Category: "Cheating", Source: "Official Gazette"},

	// Offenses Relating to Documents
	"463": {IPCSection: "463", BNSSection: "BNS 336", Notes: "Forgery - definition", Category: "Offenses Relating to Documents", Source: "Official Gazette"},
	"465": {IPCSection: "465", BNSSection: "BNS 336", Notes: "Punishment for forgery", Category: "Offenses Relating to Documents", Source: "Official Gazette"},
	"471": {IPCSection: "471", BNSSection: "BNS 340", Notes: "Using as genuine a forged document", Category: "Offenses Relating to Documents", Source: "Official Gazette"},

	// Defamation, Intimidation & Attempts
	"499": {IPCSection: "499", BNSSection: "BNS 356", Notes: "Defamation - definition", Category: "Defamation", Source: "Official Gazette"},
	"500": {IPCSection: "500", BNSSection: "BNS 356", Notes: "Punishment for defamation", Category: "Defamation", Source: "Official Gazette"},
	"506": {IPCSection: "506", BNSSection: "BNS 351", Notes: "Punishment for criminal intimidation", Category: "Criminal Intimidation", Source: "Official Gazette"},
	"511": {IPCSection: "511", BNSSection: "BNS 62", Notes: "Punishment for attempting offenses punishable with imprisonment", Category: "Attempts", Source: "Official Gazette"},
}
