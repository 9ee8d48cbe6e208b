package signup

const (
	prefixFirstName = "Votre prénom "
	prefixLastName  = "Votre nom "

	msgNameEmpty    = "ne peut pas être vide."
	msgNameInvalid  = "semble avoir des caractères non valides."
	msgNameTooShort = "doit contenir au moins 2 caractères"

	msgEmailEmpty   = "Veuillez renseigner votre email"
	msgEmailInvalid = "Vérifiez que votre email soit dans le bon format (ex: abc@abc.abc)"

	msgBirthdateEmpty    = "Veuillez renseigner votre date de naissance"
	msgBirthdateTooYoung = "Désolé, participation autorisée à partir de 18 ans"
	msgBirthdateCheck    = "Merci de vérifier votre date de naissance"

	msgQuantityInvalid = "Veuillez entrer un nombre valide"
	msgCityEmpty       = "Veuillez choisir une ville"
	msgConditionEmpty  = "Veuillez accepter les conditions"
)
