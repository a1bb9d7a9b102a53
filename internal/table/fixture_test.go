package table

import "github.com/songzhibin97/rankfi/internal/models"

func fullExchange(name string) models.Exchange {
	return models.Exchange{
		AppName:             name,
		Coins:               models.String("300+"),
		NumberOfFutures:     models.Number(250),
		MaxLeverage:         models.String("100x"),
		FiatCurrencies:      models.Number(3),
		FiatCurrencyCodes:   []string{"USD", "EUR", "XYZ"},
		MarginSpot:          models.String("10x"),
		CopyTrading:         models.Bool(true),
		TradingBots:         models.String("Yes"),
		P2PTrading:          models.String("no"),
		StakingOrEarn:       models.Bool(false),
		MobileApp:           models.String("true"),
		Support247:          models.String("Yes"),
		MakerFee:            models.String("0.10%"),
		TakerFee:            models.String("0.10% to 0.20%"),
		FuturesMakerFee:     models.String("0.02%"),
		FuturesTakerFee:     models.String("0.05%"),
		RankfiDiscount:      models.String("10%"),
		RankfiBonus:         models.String("$100 sign-up bonus"),
		Founded:             models.Number(2017),
		NumberOfUsers:       models.String("1.5M"),
		ProofOfReserves:     models.String("Yes"),
		ProofOfReservesURL:  "https://example.com/por",
		UsesColdStorage:     models.Bool(true),
		InsurancePolicy:     models.String("Yes"),
		InsurancePolicyURL:  "https://example.com/insurance",
		HacksOrIncidents:    models.String("2019, 2022"),
		HacksOrIncidentsURL: models.URLList{"https://example.com/2019", "https://example.com/2022"},
		OtherIncidents:      models.String("2023"),
		OtherIncidentsURL:   models.URLList{"https://example.com/incident"},
		TwoFA:               models.Bool(true),
		KYC:                 models.String("Mandatory"),
		PubliclyTraded:      models.String("No"),
		Headquarters:        models.String("Cayman Islands"),
		Website:             "https://example.com/" + name,
	}
}

// sampleExchanges mixes fixed-rank names with ordinary ones, out of rank order.
func sampleExchanges() []models.Exchange {
	bybit := fullExchange("Bybit")
	bybit.Coins = models.String("1K")
	bybit.MakerFee = models.String("0.05%")
	bybit.HacksOrIncidents = models.String("No")
	bybit.UsesSpreadFee = models.Bool(true)

	binance := fullExchange("Binance")
	binance.Coins = models.Number(400)
	binance.MakerFee = models.String("0.08% to 0.10%")
	binance.HacksOrIncidents = models.String("2019")

	coinbase := fullExchange("Coinbase")
	coinbase.Coins = models.String("N/A")
	coinbase.MakerFee = models.String("")
	coinbase.HacksOrIncidents = models.Value{}
	coinbase.RankfiDiscount = models.Value{}
	coinbase.Website = ""

	kraken := fullExchange("Kraken Pro")
	kraken.Coins = models.String("250")
	kraken.MakerFee = models.String("0.16%")
	kraken.HacksOrIncidents = models.String("2012, 2025")
	kraken.LogoURL = "https://example.com/kraken.png"

	ascendex := fullExchange("AscendEx")
	ascendex.Coins = models.String("600+")
	ascendex.MakerFee = models.String("0.10%")
	ascendex.HacksOrIncidents = models.String("2021")
	ascendex.ProofOfReserves = models.String("No")
	ascendex.InsurancePolicy = models.String("no")

	okx := fullExchange("OKX")
	okx.Coins = models.Number(350)
	okx.MakerFee = models.String("0.08%")
	okx.HacksOrIncidents = models.String("N/A")

	return []models.Exchange{bybit, binance, coinbase, kraken, ascendex, okx}
}

func names(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID()
	}
	return out
}
