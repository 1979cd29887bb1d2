package catalog

// Default returns the embedded seed catalog. The set mirrors the retail
// sources the aggregator has historically queried, grouped by category.
// Sources ship with the static provider until a real endpoint is configured
// for them via a catalog file.
func Default() *Catalog {
	return &Catalog{
		Sources: []Descriptor{
			// Major retailers
			{
				Name:        "target",
				Category:    "General Retail",
				Provider:    ProviderStatic,
				Description: "Target.com - General merchandise, electronics, home goods",
			},
			{
				Name:        "overstock",
				Category:    "General Retail",
				Provider:    ProviderStatic,
				Description: "Overstock.com - Home goods, furniture, jewelry",
			},

			// Electronics
			{
				Name:        "bestbuy",
				Category:    "Electronics",
				Provider:    ProviderStatic,
				Description: "BestBuy.com - Electronics, appliances, tech products",
			},
			{
				Name:        "newegg",
				Category:    "Electronics",
				Provider:    ProviderStatic,
				Description: "Newegg.com - Computer hardware, electronics",
			},
			{
				Name:        "microcenter",
				Category:    "Electronics",
				Provider:    ProviderStatic,
				Description: "MicroCenter.com - Computer parts, electronics",
			},
			{
				Name:        "apple",
				Category:    "Electronics",
				Provider:    ProviderStatic,
				Description: "Apple.com - Apple products, accessories",
			},

			// Home improvement
			{
				Name:        "homedepot",
				Category:    "Home Improvement",
				Provider:    ProviderStatic,
				Description: "HomeDepot.com - Tools, hardware, building materials",
			},
			{
				Name:        "lowes",
				Category:    "Home Improvement",
				Provider:    ProviderStatic,
				Description: "Lowes.com - Home improvement, appliances, tools",
			},

			// Department stores
			{
				Name:        "macys",
				Category:    "Department Store",
				Provider:    ProviderStatic,
				Description: "Macys.com - Clothing, home goods, beauty",
			},
			{
				Name:        "nordstrom",
				Category:    "Department Store",
				Provider:    ProviderStatic,
				Description: "Nordstrom.com - Fashion, shoes, accessories",
			},
			{
				Name:        "kohls",
				Category:    "Department Store",
				Provider:    ProviderStatic,
				Description: "Kohls.com - Clothing, home, beauty",
			},

			// Office
			{
				Name:        "staples",
				Category:    "Office Supplies",
				Provider:    ProviderStatic,
				Description: "Staples.com - Office supplies, electronics, furniture",
			},
			{
				Name:        "officedepot",
				Category:    "Office Supplies",
				Provider:    ProviderStatic,
				Description: "OfficeDepot.com - Office supplies, technology",
			},

			// Beauty
			{
				Name:        "sephora",
				Category:    "Beauty",
				Provider:    ProviderStatic,
				Description: "Sephora.com - Cosmetics, skincare, fragrance",
			},
			{
				Name:        "ulta",
				Category:    "Beauty",
				Provider:    ProviderStatic,
				Description: "Ulta.com - Beauty products, salon services",
			},

			// Grocery
			{
				Name:        "kroger",
				Category:    "Grocery",
				Provider:    ProviderStatic,
				Description: "Kroger.com - Groceries, household items",
			},
			{
				Name:        "safeway",
				Category:    "Grocery",
				Provider:    ProviderStatic,
				Description: "Safeway.com - Groceries, pharmacy, deli",
			},
			{
				Name:        "wholefoods",
				Category:    "Grocery",
				Provider:    ProviderStatic,
				Description: "WholeFoods.com - Organic groceries, natural products",
			},

			// Pharmacy
			{
				Name:        "walgreens",
				Category:    "Pharmacy",
				Provider:    ProviderStatic,
				Description: "Walgreens.com - Pharmacy, health, beauty",
			},
			{
				Name:        "riteaid",
				Category:    "Pharmacy",
				Provider:    ProviderStatic,
				Description: "RiteAid.com - Pharmacy, wellness products",
			},

			// Specialty
			{
				Name:        "rei",
				Category:    "Outdoor",
				Provider:    ProviderStatic,
				Description: "REI.com - Outdoor gear, camping, sports equipment",
			},
			{
				Name:        "gamestop",
				Category:    "Gaming",
				Provider:    ProviderStatic,
				Description: "GameStop.com - Video games, gaming accessories",
			},
			{
				Name:        "petco",
				Category:    "Pet Supplies",
				Provider:    ProviderStatic,
				Description: "Petco.com - Pet food, supplies, accessories",
			},
			{
				Name:        "autozone",
				Category:    "Automotive",
				Provider:    ProviderStatic,
				Description: "AutoZone.com - Auto parts, accessories, tools",
			},
			{
				Name:        "wayfair",
				Category:    "Furniture",
				Provider:    ProviderStatic,
				Description: "Wayfair.com - Furniture, home decor, appliances",
			},
			{
				Name:        "barnesnoble",
				Category:    "Books",
				Provider:    ProviderStatic,
				Description: "BarnesAndNoble.com - Books, games, gifts",
			},

			// Wholesale and discount
			{
				Name:        "samsclub",
				Category:    "Wholesale",
				Provider:    ProviderStatic,
				Description: "SamsClub.com - Wholesale, bulk items",
			},
			{
				Name:        "dollartree",
				Category:    "Discount",
				Provider:    ProviderStatic,
				Description: "DollarTree.com - Discount items, household goods",
			},
		},
	}
}
