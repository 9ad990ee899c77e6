package tables

// Default returns the built-in reference data set. The content follows
// Brazilian banking conventions; callers needing different data load a
// versioned YAML file instead of editing this one.
func Default() *Tables {
	return &Tables{
		Version:   "2025.08",
		Prefixes:  defaultPrefixes(),
		Stopwords: defaultStopwords(),
		Gateways:  defaultGateways(),
		States:    defaultStates(),
		Cities:    defaultCities(),
		Merchants: defaultMerchants(),
		Nature:    defaultNature(),
	}
}

// defaultPrefixes returns the descriptor prefix standardization table.
// Order matters: the longer variants of a prefix family must come
// before the short one, and the scan stops at the first match.
func defaultPrefixes() []PrefixRule {
	return []PrefixRule{
		{Prefix: "debito automatico", Code: "DEBAUTO"},
		{Prefix: "deb automatico", Code: "DEBAUTO"},
		{Prefix: "debito autom", Code: "DEBAUTO"},
		{Prefix: "deb auto", Code: "DEBAUTO"},
		{Prefix: "pix recebido", Code: "PIX"},
		{Prefix: "pix enviado", Code: "PIX"},
		{Prefix: "pix transf", Code: "PIX"},
		{Prefix: "pix qr code", Code: "PIX"},
		{Prefix: "pix ", Code: "PIX"},
		{Prefix: "ted recebida", Code: "TED"},
		{Prefix: "ted enviada", Code: "TED"},
		{Prefix: "ted ", Code: "TED"},
		{Prefix: "doc ", Code: "DOC"},
		{Prefix: "transferencia recebida", Code: "TRANSF"},
		{Prefix: "transferencia enviada", Code: "TRANSF"},
		{Prefix: "transferencia ", Code: "TRANSF"},
		{Prefix: "transf ", Code: "TRANSF"},
		{Prefix: "pagamento de boleto", Code: "BOLETO"},
		{Prefix: "pagto boleto", Code: "BOLETO"},
		{Prefix: "boleto ", Code: "BOLETO"},
		{Prefix: "pagamento fatura", Code: "FATURA"},
		{Prefix: "pgto fatura", Code: "FATURA"},
		{Prefix: "pagamento de convenio", Code: "PAG"},
		{Prefix: "pagamento conta", Code: "PAG"},
		{Prefix: "pagamento ", Code: "PAG"},
		{Prefix: "pagto ", Code: "PAG"},
		{Prefix: "pgto ", Code: "PAG"},
		{Prefix: "pag ", Code: "PAG"},
		{Prefix: "compra com cartao", Code: "COMPRA"},
		{Prefix: "compra cartao", Code: "COMPRA"},
		{Prefix: "compra no debito", Code: "COMPRA"},
		{Prefix: "compra debito", Code: "COMPRA"},
		{Prefix: "compra credito", Code: "COMPRA"},
		{Prefix: "compra ", Code: "COMPRA"},
		{Prefix: "saque eletronico", Code: "SAQUE"},
		{Prefix: "saque 24h", Code: "SAQUE"},
		{Prefix: "saque ", Code: "SAQUE"},
		{Prefix: "deposito ", Code: "DEP"},
		{Prefix: "recarga de celular", Code: "RECARGA"},
		{Prefix: "recarga ", Code: "RECARGA"},
		{Prefix: "tarifa bancaria", Code: "TARIFA"},
		{Prefix: "cesta de servicos", Code: "TARIFA"},
		{Prefix: "tarifa ", Code: "TARIFA"},
		{Prefix: "anuidade ", Code: "ANUIDADE"},
		{Prefix: "estorno de", Code: "ESTORNO"},
		{Prefix: "estorno ", Code: "ESTORNO"},
		{Prefix: "juros de", Code: "JUROS"},
		{Prefix: "juros ", Code: "JUROS"},
		{Prefix: "iof ", Code: "IOF"},
		{Prefix: "rendimento ", Code: "REND"},
		{Prefix: "aplicacao ", Code: "APLIC"},
		{Prefix: "resgate ", Code: "RESG"},
		{Prefix: "cheque compensado", Code: "CHEQUE"},
		{Prefix: "cheque ", Code: "CHEQUE"},
	}
}

// defaultStopwords returns tokens carrying no merchant information:
// Portuguese function words, corporate suffixes and generic banking
// noise words.
func defaultStopwords() []string {
	return []string{
		// function words
		"de", "da", "do", "das", "dos", "em", "no", "na", "nos", "nas",
		"com", "para", "por", "pelo", "pela", "ao", "aos", "um", "uma",
		"os", "as",
		// corporate suffixes
		"ltda", "me", "epp", "eireli", "sa", "cia",
		// generic noise
		"pag", "pagamento", "pagto", "pgto", "parcela", "parc",
		"br", "brasil", "loja",
	}
}

// defaultGateways returns payment-gateway prefixes stripped before
// merchant lookup. Matched anchored at the start, with an optional
// trailing asterisk.
func defaultGateways() []string {
	return []string{
		"PAGSEGURO", "PAGARME", "MERCADOPAGO", "MERCPAGO", "PICPAY",
		"PAYPAL", "STONE", "CIELO", "GETNET", "SUMUP", "SAFRAPAY",
		"REDE", "EBANX", "ADYEN", "ZOOP", "IUGU", "VINDI", "PAG", "MP",
	}
}

// defaultStates returns the Brazilian state abbreviations removed from
// descriptors before merchant lookup.
func defaultStates() []string {
	return []string{
		"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO", "MA",
		"MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI", "RJ", "RN",
		"RS", "RO", "RR", "SC", "SP", "SE", "TO",
	}
}

// defaultCities returns tokens of major Brazilian city names. They are
// stripped from a descriptor only when a state abbreviation is also
// present, which keeps merchant names containing city words intact.
func defaultCities() []string {
	return []string{
		"SAO", "PAULO", "RIO", "JANEIRO", "BELO", "HORIZONTE",
		"PORTO", "ALEGRE", "CURITIBA", "SALVADOR", "FORTALEZA",
		"RECIFE", "MANAUS", "BELEM", "GOIANIA", "BRASILIA",
		"CAMPINAS", "GUARULHOS", "OSASCO", "SANTOS", "NITEROI",
		"FLORIANOPOLIS", "VITORIA", "NATAL", "MACEIO", "TERESINA",
		"CUIABA", "CAMPO", "GRANDE", "JOAO", "PESSOA", "ARACAJU",
		"PALMAS", "MACAPA", "BOA", "VISTA", "BRANCO", "LONDRINA",
		"JOINVILLE", "UBERLANDIA", "SOROCABA", "RIBEIRAO", "PRETO",
	}
}

// defaultMerchants returns the closed merchant dictionary. The slice is
// ordered and lookup takes the first hit, so entries prone to substring
// collisions (short brand codes in particular) live at the end.
func defaultMerchants() []string {
	return []string{
		// streaming and digital
		"NETFLIX", "SPOTIFY", "GLOBOPLAY", "DISNEYPLUS", "DISNEY",
		"AMAZONPRIME", "PRIMEVIDEO", "HBOMAX", "PARAMOUNT", "DEEZER",
		"CRUNCHYROLL", "TELECINE", "YOUTUBE", "GOOGLE", "APPLE",
		"MICROSOFT", "STEAM", "PLAYSTATION", "XBOX", "NINTENDO",
		// delivery
		"IFOOD", "RAPPI", "UBEREATS", "AIQFOME", "ZEDELIVERY",
		// transport
		"UBER", "99APP", "99POP", "CABIFY", "BUSER", "CLICKBUS",
		// telecom
		"VIVO", "CLARO", "TIMBRASIL", "NEXTEL", "ALGAR",
		// utilities
		"ENEL", "LIGHT", "CEMIG", "COPEL", "CELESC", "COELBA",
		"ELETROPAULO", "EQUATORIAL", "SABESP", "CEDAE", "SANEPAR",
		"EMBASA", "COMGAS", "NATURGY", "ULTRAGAZ", "SUPERGASBRAS",
		// banks and fintechs
		"NUBANK", "ITAU", "BRADESCO", "SANTANDER", "BANCOINTER",
		"SICOOB", "SICREDI", "BANRISUL", "SAFRA", "ORIGINAL", "NEON",
		"PAGBANK", "BTGPACTUAL", "XPINVEST", "CAIXA", "INTER",
		// retail
		"AMAZON", "MAGALU", "MAGAZINELUIZA", "MERCADOLIVRE",
		"AMERICANAS", "CASASBAHIA", "PONTOFRIO", "CARREFOUR", "ASSAI",
		"ATACADAO", "PAODEACUCAR", "SAMSCLUB", "ALIEXPRESS", "SHOPEE",
		"SHEIN", "RENNER", "RIACHUELO", "MARISA", "CENTAURO",
		"DECATHLON", "LEROYMERLIN", "TOKSTOK", "MADEIRAMADEIRA",
		"KABUM", "FASTSHOP", "HAVAN",
		// pharmacies and health
		"DROGASIL", "DROGARAIA", "PACHECO", "PAGUEMENOS", "ULTRAFARMA",
		"PANVEL", "UNIMED", "AMIL", "SULAMERICA", "HAPVIDA",
		"NOTREDAME", "ODONTOPREV", "FLEURY", "DASA",
		// food
		"MCDONALDS", "BURGERKING", "SUBWAY", "HABIBS", "OUTBACK",
		"STARBUCKS", "GIRAFFAS", "DOMINOS", "PIZZAHUT", "MADERO",
		"COCOBAMBU",
		// education
		"ESTACIO", "ANHANGUERA", "UNINOVE", "UNIP", "WIZARD", "CCAA",
		"CULTURAINGLESA", "FISK", "KUMON", "ALURA", "UDEMY", "COURSERA",
		// gyms
		"SMARTFIT", "BIORITMO", "BLUEFIT", "SELFIT", "BODYTECH",
		"GYMPASS", "WELLHUB",
		// travel
		"LATAM", "AZUL", "DECOLAR", "BOOKING", "AIRBNB", "CVC",
		"HOTELURBANO", "123MILHAS",
		// fuel
		"SHELL", "IPIRANGA", "PETROBRAS", "TEXACO",
		// short brand codes last: these match by containment too easily
		// to be allowed earlier in the scan
		"GOL", "TIM", "SKY", "OI", "C6", "XP", "BB", "BR",
	}
}

// defaultNature returns the deterministic expense-nature rule tables
// and the recurrence-heuristic candidate list. Category identifiers are
// the taxonomy's default slugs.
func defaultNature() NatureTables {
	return NatureTables{
		Eventual: []string{
			"viagens", "presentes", "doacoes", "eventos", "emergencias",
		},
		Fixed: []CategoryRule{
			{Category: "moradia", Subcategories: []string{
				"aluguel", "condominio", "agua", "energia", "gas",
				"internet", "telefone", "iptu",
			}},
			{Category: "saude", Subcategories: []string{
				"plano-saude", "seguro-vida",
			}},
			{Category: "transporte", Subcategories: []string{
				"seguro-auto", "ipva", "financiamento-veiculo",
			}},
			{Category: "financeiro", Subcategories: []string{
				"tarifas-bancarias", "anuidade-cartao",
			}},
			{Category: "pets", Subcategories: []string{
				"plano-saude-pet",
			}},
			{Category: "educacao", Subcategories: []string{
				"curso-ingles", "mensalidade-escolar",
			}},
			{Category: "assinaturas"},
		},
		Variable: []string{
			"alimentacao", "lazer", "cuidados-pessoais",
		},
		Heuristics: []CategoryRule{
			{Category: "saude", Subcategories: []string{
				"academia", "personal-trainer",
			}},
			{Category: "educacao", Subcategories: []string{
				"atividades-extracurriculares",
			}},
			{Category: "moradia", Subcategories: []string{
				"manutencao-estrutural",
			}},
			{Category: "transporte", Subcategories: []string{
				"estacionamento",
			}},
		},
	}
}
