package handler

const (
	textGreeting = "🎰 *Benvenuto su GiankyBot!* 🎰\n\n" +
		"Per iniziare a giocare e vincere premi:\n" +
		"1. Registrati con il tuo wallet\n" +
		"2. Ottieni 3 spin GRATIS\n" +
		"3. Gira la ruota per vincere GKY!\n\n" +
		"Clicca il bottone qui sotto per registrarti:"

	textWelcomeBack = "👋 Bentornato, %s!\n\n" +
		"💰 Saldo: `%d GKY`\n" +
		"🎫 Spin disponibili: `%d`\n\n" +
		"Cosa vuoi fare?"

	textInfo = "ℹ️ *Info sul Bot*\n\n" +
		"GiankyBot è un bot divertente che ti permette di girare una ruota virtuale per vincere GKY! " +
		"Puoi usare i tuoi GKY per acquistare spin, guadagnare premi e interagire con altri utenti. " +
		"Inoltre, puoi guadagnare GKY gratis registrandoti e partecipando alla nostra community!\n\n" +
		"Per iniziare, clicca su 'Registrati' oppure esplora le altre funzionalità del bot."

	textError        = "❌ Si è verificato un errore. Riprova."
	textMustRegister = "ℹ️ Devi prima registrarti."

	textAskWallet = "📝 *Registrazione*\n\n" +
		"Invia l'indirizzo del tuo wallet per completare la registrazione:"
	textInvalidWallet = "⚠️ Indirizzo wallet non valido. Invialo di nuovo, senza spazi:"
	textRegistered    = "✅ *Registrazione completata!*\n\n" +
		"💰 Saldo iniziale: `%d GKY`\n" +
		"🎫 Spin gratis: `%d`\n" +
		"🔗 Il tuo codice referral: `%s`\n\n" +
		"Se vuoi, condividi il tuo numero di telefono con il bottone qui sotto."

	textSharePhone   = "📱 Condividi numero"
	textWrongContact = "Per favore, invia il tuo numero di telefono."
	textPhoneSaved   = "✅ Numero di telefono salvato."

	textBuySpins = "🛒 *Acquista Spin*\n\n" +
		"Scegli il pacchetto di spin che desideri acquistare:"
	textPurchasePending = "🧾 *Richiesta registrata*\n\n" +
		"Pacchetto: %s\n" +
		"Transazione: `#%d`\n" +
		"Stato: `in attesa`"

	textStats = "📊 *Le tue statistiche*\n\n" +
		"💰 Saldo: `%d GKY`\n" +
		"🎫 Spin disponibili: `%d`\n" +
		"🔗 Codice referral: `%s`\n" +
		"👛 Wallet: `%s`\n" +
		"📅 Registrato il: %s"

	textNoUsers = "Nessun utente registrato."
)
