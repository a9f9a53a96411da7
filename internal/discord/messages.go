package discord

// Friendly message constants for Discord responses
const (
	MsgInsufficientFunds = "⚠️ **Not Enough Inches!**\nYour balance doesn't cover this purchase."
	MsgItemNotFound      = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgInvalidInput      = "✏️ **Invalid Input**\nCheck your amount, multiplier and balance."
	MsgShopUnavailable   = "🛠️ **Shop Unavailable**\nThe shop is restocking, try again in a moment."
	MsgConnectionError   = "Error connecting to the shop server."

	MsgGenericError = "❌ Something went wrong."
)

// Embed titles
const (
	TitleShop         = "🛒 Multiplier Shop"
	TitleQuote        = "🧾 Purchase Quote"
	TitleQuoteMax     = "📈 Max Purchase"
	TitleUnaffordable = "💸 Can't Afford That"
)

// Embed colors
const (
	ColorShop         = 0x3498db
	ColorAffordable   = 0x2ecc71
	ColorUnaffordable = 0xe67e22
)
