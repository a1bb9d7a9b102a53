package models

// Exchange 交易所对比表中的一行
type Exchange struct {
	AppName string `json:"app_name"`
	LogoURL string `json:"logoUrl,omitempty"`

	// Features
	Coins           Value `json:"coins"`
	NumberOfFutures Value `json:"number_of_futures"`
	MaxLeverage     Value `json:"max_leverage"`
	FiatCurrencies  Value `json:"fiat_currencies"`
	MarginSpot      Value `json:"margin_spot"`
	CopyTrading     Value `json:"copy_trading"`
	TradingBots     Value `json:"trading_bots"`
	P2PTrading      Value `json:"p2p_trading"`
	StakingOrEarn   Value `json:"staking_or_earn"`
	MobileApp       Value `json:"mobile_app"`
	Support247      Value `json:"247_support"`

	// ISO codes shown in the fiat wallets tooltip
	FiatCurrencyCodes []string `json:"fiat_currency_codes,omitempty"`

	// Fees
	MakerFee        Value `json:"maker_fee"`
	TakerFee        Value `json:"taker_fee"`
	FuturesMakerFee Value `json:"futures_maker_fee"`
	FuturesTakerFee Value `json:"futures_taker_fee"`
	RankfiDiscount  Value `json:"rankfi_discount"`
	RankfiBonus     Value `json:"rankfi_bonus"`
	UsesSpreadFee   Value `json:"uses_spread_fee"`

	// Security
	Founded             Value   `json:"founded"`
	NumberOfUsers       Value   `json:"number_of_users"`
	ProofOfReserves     Value   `json:"proof_of_reserves"`
	ProofOfReservesURL  string  `json:"proof_of_reserves_url,omitempty"`
	UsesColdStorage     Value   `json:"uses_cold_storage"`
	InsurancePolicy     Value   `json:"insurance_policy"`
	InsurancePolicyURL  string  `json:"insurance_policy_url,omitempty"`
	HacksOrIncidents    Value   `json:"hacks_or_incidents"`
	HacksOrIncidentsURL URLList `json:"hacks_or_incidents_url,omitempty"`
	OtherIncidents      Value   `json:"other_incidents"`
	OtherIncidentsURL   URLList `json:"other_incidents_url,omitempty"`
	TwoFA               Value   `json:"2fa"`
	KYC                 Value   `json:"kyc"`
	PubliclyTraded      Value   `json:"publicly_traded"`
	Headquarters        Value   `json:"headquarters"`

	Website string `json:"website"`
}

// Field returns the raw value stored under a column key. Unknown keys yield
// a null value.
func (e *Exchange) Field(key string) Value {
	switch key {
	case "app_name":
		return String(e.AppName)
	case "coins":
		return e.Coins
	case "number_of_futures":
		return e.NumberOfFutures
	case "max_leverage":
		return e.MaxLeverage
	case "fiat_currencies":
		return e.FiatCurrencies
	case "margin_spot":
		return e.MarginSpot
	case "copy_trading":
		return e.CopyTrading
	case "trading_bots":
		return e.TradingBots
	case "p2p_trading":
		return e.P2PTrading
	case "staking_or_earn":
		return e.StakingOrEarn
	case "mobile_app":
		return e.MobileApp
	case "247_support":
		return e.Support247
	case "maker_fee":
		return e.MakerFee
	case "taker_fee":
		return e.TakerFee
	case "futures_maker_fee":
		return e.FuturesMakerFee
	case "futures_taker_fee":
		return e.FuturesTakerFee
	case "rankfi_discount":
		return e.RankfiDiscount
	case "rankfi_bonus":
		return e.RankfiBonus
	case "uses_spread_fee":
		return e.UsesSpreadFee
	case "founded":
		return e.Founded
	case "number_of_users":
		return e.NumberOfUsers
	case "proof_of_reserves":
		return e.ProofOfReserves
	case "uses_cold_storage":
		return e.UsesColdStorage
	case "insurance_policy":
		return e.InsurancePolicy
	case "hacks_or_incidents":
		return e.HacksOrIncidents
	case "other_incidents":
		return e.OtherIncidents
	case "2fa":
		return e.TwoFA
	case "kyc":
		return e.KYC
	case "publicly_traded":
		return e.PubliclyTraded
	case "headquarters":
		return e.Headquarters
	case "website":
		return String(e.Website)
	}
	return Value{}
}
