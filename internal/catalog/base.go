package catalog

import "github.com/lox/draftforbots/draft"

// Names of cards that other cards unlock or that tests and bots refer to.
const (
	CardHydroWorks       = "Hydro Works"
	CardAnnexHall        = "Annex Hall"
	CardFoundersStatue   = "Founders Statue"
	CardLegalOffice      = "Legal Office"
	CardRecordsLibrary   = "Records Library"
	CardKNineUnit        = "K9 Unit"
	CardClinic           = "Clinic"
	CardRangeFacility    = "Range Facility"
	CardRDLab            = "R&D Lab"
	CardTradeForum       = "Trade Forum"
	CardLogisticsHub     = "Logistics Hub"
	CardRooftopGarden    = "Rooftop Garden"
	CardAnnualGala       = "Annual Gala"
	CardBoardroom        = "Boardroom"
	CardCorporateUni     = "Corporate University"
	CardFreightTerminal  = "Freight Terminal"
	CardSignalTower      = "Signal Tower"
	CardPerimeterControl = "Perimeter Control"
	CardRapidResponse    = "Rapid Response"
	CardCyberDefense     = "Cyber Defense"
	CardInnovationHub    = "Innovation Hub"
	CardConventionArena  = "Convention Arena"
	CardThinkTank        = "Think Tank"
)

// Base returns the built-in content set. It supports tables of three to
// seven players and exercises every effect the engine understands.
func Base() *Catalog {
	return &Catalog{
		ages: map[draft.Age][]*draft.Card{
			draft.AgeI:   ageOne(),
			draft.AgeII:  ageTwo(),
			draft.AgeIII: ageThree(),
		},
		community: communityCards(),
		companies: companies(),
	}
}

// copies stamps one printed copy per listed minimum table size.
func copies(card draft.Card, mins ...int) []*draft.Card {
	out := make([]*draft.Card, len(mins))
	for i, m := range mins {
		dup := card
		dup.MinPlayers = m
		out[i] = &dup
	}
	return out
}

func funding(n int) draft.Cost {
	return draft.Cost{Funding: n}
}

func costOf(rs ...draft.Resource) draft.Cost {
	return draft.Cost{Resources: draft.NewResources(rs...)}
}

func prestige(points int) draft.AddVictory {
	return draft.AddVictory{Category: draft.CategoryPrestige, Points: points}
}

func stageVP(points int) draft.AddVictory {
	return draft.AddVictory{Category: draft.CategoryCompany, Points: points}
}

func ageOne() []*draft.Card {
	var deck []*draft.Card
	add := func(card draft.Card, mins ...int) {
		card.Age = draft.AgeI
		deck = append(deck, copies(card, mins...)...)
	}

	// Suppliers: one fixed producer per raw material plus paid choice sites.
	add(draft.Card{Name: "Timber Yard", Kind: draft.KindSupplier,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Timber, 1))}}, 3, 4)
	add(draft.Card{Name: "Concrete Plant", Kind: draft.KindSupplier,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Concrete, 1))}}, 3, 5)
	add(draft.Card{Name: "Silicon Fab", Kind: draft.KindSupplier,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Silicon, 1))}}, 3, 5)
	add(draft.Card{Name: "Steel Mine", Kind: draft.KindSupplier,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Steel, 1))}}, 3, 4)
	add(draft.Card{Name: "Quarry Works", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Choice(draft.Silicon, draft.Steel)}}, 3)
	add(draft.Card{Name: "Supply Depot", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Choice(draft.Timber, draft.Concrete)}}, 3)
	add(draft.Card{Name: "Excavation Site", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Choice(draft.Concrete, draft.Silicon)}}, 4)
	add(draft.Card{Name: "Border Holdings", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Choice(draft.Timber, draft.Steel)}}, 5)
	add(draft.Card{Name: "Mixed Forestry", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Choice(draft.Timber, draft.Silicon)}}, 6)
	add(draft.Card{Name: "Deep Mine", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Choice(draft.Steel, draft.Concrete)}}, 6)

	// Workshops: the three refined goods.
	add(draft.Card{Name: "Software Studio", Kind: draft.KindWorkshop,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Software, 1))}}, 3, 6)
	add(draft.Card{Name: "Design Bureau", Kind: draft.KindWorkshop,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Design, 1))}}, 3, 6)
	add(draft.Card{Name: "Media House", Kind: draft.KindWorkshop,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Media, 1))}}, 3, 6)

	// Prestige.
	add(draft.Card{Name: "Company Gym", Kind: draft.KindPrestige, Cost: costOf(draft.Concrete),
		Effects: []draft.Effect{prestige(3), draft.Unlocks{Names: []string{CardHydroWorks}}}}, 3, 7)
	add(draft.Card{Name: "Lobby Atrium", Kind: draft.KindPrestige,
		Effects: []draft.Effect{prestige(2), draft.Unlocks{Names: []string{CardAnnexHall}}}}, 3, 5)
	add(draft.Card{Name: "Auditorium", Kind: draft.KindPrestige,
		Effects: []draft.Effect{prestige(2), draft.Unlocks{Names: []string{CardFoundersStatue}}}}, 3, 6)
	add(draft.Card{Name: "Reception Hall", Kind: draft.KindPrestige,
		Effects: []draft.Effect{prestige(3)}}, 4, 7)

	// Commerce: a funding spike and the three exchange discounts.
	add(draft.Card{Name: "Job Fair", Kind: draft.KindCommerce,
		Effects: []draft.Effect{draft.GainFunding{Amount: 5}}}, 4, 5, 7)
	add(draft.Card{Name: "Import Desk East", Kind: draft.KindCommerce,
		Effects: []draft.Effect{
			draft.Discount{Directions: []draft.Direction{draft.Right}, Price: 1},
			draft.Unlocks{Names: []string{CardTradeForum}},
		}}, 3, 7)
	add(draft.Card{Name: "Import Desk West", Kind: draft.KindCommerce,
		Effects: []draft.Effect{
			draft.Discount{Directions: []draft.Direction{draft.Left}, Price: 1},
			draft.Unlocks{Names: []string{CardTradeForum}},
		}}, 3, 7)
	add(draft.Card{Name: "Open Market", Kind: draft.KindCommerce,
		Effects: []draft.Effect{
			draft.Discount{Directions: draft.BothDirections, Refined: true, Price: 1},
			draft.Unlocks{Names: []string{CardLogisticsHub}},
		}}, 3, 6)

	// Poaching.
	add(draft.Card{Name: "Security Fence", Kind: draft.KindPoaching, Cost: costOf(draft.Timber),
		Effects: []draft.Effect{draft.Poaching{Strength: 1}}}, 3, 7)
	add(draft.Card{Name: "Guard Desk", Kind: draft.KindPoaching, Cost: costOf(draft.Steel),
		Effects: []draft.Effect{draft.Poaching{Strength: 1}}}, 3, 5)
	add(draft.Card{Name: "Watch Office", Kind: draft.KindPoaching, Cost: costOf(draft.Silicon),
		Effects: []draft.Effect{draft.Poaching{Strength: 1}}}, 3, 4)

	// Research: one card per tag, each opening an age II chain.
	add(draft.Card{Name: "Biotech Lab", Kind: draft.KindResearch, Cost: costOf(draft.Design),
		Effects: []draft.Effect{
			draft.Research{Tag: draft.Biotech},
			draft.Unlocks{Names: []string{CardKNineUnit, CardClinic}},
		}}, 3, 5)
	add(draft.Card{Name: "Engineering Shop", Kind: draft.KindResearch, Cost: costOf(draft.Software),
		Effects: []draft.Effect{
			draft.Research{Tag: draft.Engineering},
			draft.Unlocks{Names: []string{CardRangeFacility, CardRDLab}},
		}}, 3, 7)
	add(draft.Card{Name: "Analytics Desk", Kind: draft.KindResearch, Cost: costOf(draft.Media),
		Effects: []draft.Effect{
			draft.Research{Tag: draft.Analytics},
			draft.Unlocks{Names: []string{CardLegalOffice, CardRecordsLibrary}},
		}}, 3, 4)

	return deck
}

func ageTwo() []*draft.Card {
	var deck []*draft.Card
	add := func(card draft.Card, mins ...int) {
		card.Age = draft.AgeII
		deck = append(deck, copies(card, mins...)...)
	}

	// Suppliers: double-output plants for every raw material.
	add(draft.Card{Name: "Sawmill", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Timber, 2))}}, 3, 4)
	add(draft.Card{Name: "Concrete Works", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Concrete, 2))}}, 3, 4)
	add(draft.Card{Name: "Fab Complex", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Silicon, 2))}}, 3, 4)
	add(draft.Card{Name: "Steel Foundry", Kind: draft.KindSupplier, Cost: funding(1),
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Steel, 2))}}, 3, 4)

	// Workshops: second printing of the age I studios.
	add(draft.Card{Name: "Software Studio", Kind: draft.KindWorkshop,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Software, 1))}}, 3, 5)
	add(draft.Card{Name: "Design Bureau", Kind: draft.KindWorkshop,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Design, 1))}}, 3, 5)
	add(draft.Card{Name: "Media House", Kind: draft.KindWorkshop,
		Effects: []draft.Effect{draft.Fixed(draft.Of(draft.Media, 1))}}, 3, 5)

	// Prestige.
	add(draft.Card{Name: CardHydroWorks, Kind: draft.KindPrestige,
		Cost:    costOf(draft.Concrete, draft.Concrete, draft.Concrete),
		Effects: []draft.Effect{prestige(5)}}, 3, 7)
	add(draft.Card{Name: CardAnnexHall, Kind: draft.KindPrestige,
		Cost: costOf(draft.Timber, draft.Silicon, draft.Software),
		Effects: []draft.Effect{
			prestige(3), draft.Unlocks{Names: []string{CardAnnualGala}},
		}}, 3, 6)
	add(draft.Card{Name: CardFoundersStatue, Kind: draft.KindPrestige,
		Cost: costOf(draft.Timber, draft.Timber, draft.Steel),
		Effects: []draft.Effect{
			prestige(4), draft.Unlocks{Names: []string{CardRooftopGarden}},
		}}, 3, 7)
	add(draft.Card{Name: CardLegalOffice, Kind: draft.KindPrestige,
		Cost:    costOf(draft.Silicon, draft.Silicon, draft.Design),
		Effects: []draft.Effect{prestige(4)}}, 3, 5)

	// Commerce: flexible producers and funding engines. The forum and hub
	// produce but stay commerce cards, so neighbors cannot buy from them.
	add(draft.Card{Name: CardTradeForum, Kind: draft.KindCommerce,
		Cost: costOf(draft.Silicon, draft.Silicon),
		Effects: []draft.Effect{
			draft.Choice(draft.Software, draft.Design, draft.Media),
			draft.Unlocks{Names: []string{CardFreightTerminal}},
		}}, 3, 6, 7)
	add(draft.Card{Name: CardLogisticsHub, Kind: draft.KindCommerce,
		Cost: costOf(draft.Timber, draft.Timber),
		Effects: []draft.Effect{
			draft.Choice(draft.Steel, draft.Timber, draft.Concrete, draft.Silicon),
			draft.Unlocks{Names: []string{CardSignalTower}},
		}}, 3, 5, 6)
	add(draft.Card{Name: "Staff Canteen", Kind: draft.KindCommerce,
		Effects: []draft.Effect{draft.GainFunding{
			Amount: 1, Per: draft.PerKind(draft.ScopeSelfAndNeighbors, draft.KindSupplier),
		}}}, 3, 6)
	add(draft.Card{Name: "Outlet Store", Kind: draft.KindCommerce,
		Effects: []draft.Effect{draft.GainFunding{
			Amount: 2, Per: draft.PerKind(draft.ScopeSelfAndNeighbors, draft.KindWorkshop),
		}}}, 4, 7)

	// Poaching.
	add(draft.Card{Name: "Security Wing", Kind: draft.KindPoaching,
		Cost: costOf(draft.Concrete, draft.Concrete, draft.Concrete),
		Effects: []draft.Effect{
			draft.Poaching{Strength: 2},
			draft.Unlocks{Names: []string{CardPerimeterControl}},
		}}, 3, 7)
	add(draft.Card{Name: "Training Camp", Kind: draft.KindPoaching,
		Cost: costOf(draft.Steel, draft.Steel, draft.Timber),
		Effects: []draft.Effect{
			draft.Poaching{Strength: 2},
			draft.Unlocks{Names: []string{CardRapidResponse}},
		}}, 4, 6, 7)
	add(draft.Card{Name: CardKNineUnit, Kind: draft.KindPoaching,
		Cost:    costOf(draft.Steel, draft.Silicon, draft.Timber),
		Effects: []draft.Effect{draft.Poaching{Strength: 2}}}, 3, 5)
	add(draft.Card{Name: CardRangeFacility, Kind: draft.KindPoaching,
		Cost:    costOf(draft.Timber, draft.Timber, draft.Steel),
		Effects: []draft.Effect{draft.Poaching{Strength: 2}}}, 3, 6)

	// Research.
	add(draft.Card{Name: CardClinic, Kind: draft.KindResearch,
		Cost: costOf(draft.Steel, draft.Steel, draft.Software),
		Effects: []draft.Effect{
			draft.Research{Tag: draft.Biotech},
			draft.Unlocks{Names: []string{CardConventionArena, CardThinkTank}},
		}}, 3, 4)
	add(draft.Card{Name: CardRDLab, Kind: draft.KindResearch,
		Cost: costOf(draft.Silicon, draft.Silicon, draft.Media),
		Effects: []draft.Effect{
			draft.Research{Tag: draft.Engineering},
			draft.Unlocks{Names: []string{CardCyberDefense, CardInnovationHub}},
		}}, 3, 5)
	add(draft.Card{Name: CardRecordsLibrary, Kind: draft.KindResearch,
		Cost: costOf(draft.Concrete, draft.Concrete, draft.Design),
		Effects: []draft.Effect{
			draft.Research{Tag: draft.Analytics},
			draft.Unlocks{Names: []string{CardBoardroom, CardCorporateUni}},
		}}, 3, 6)
	add(draft.Card{Name: "Training School", Kind: draft.KindResearch,
		Cost:    costOf(draft.Timber, draft.Media),
		Effects: []draft.Effect{draft.Research{Tag: draft.Analytics}}}, 3, 7)

	return deck
}

func ageThree() []*draft.Card {
	var deck []*draft.Card
	add := func(card draft.Card, mins ...int) {
		card.Age = draft.AgeIII
		deck = append(deck, copies(card, mins...)...)
	}

	// Prestige: the big point cards.
	add(draft.Card{Name: CardRooftopGarden, Kind: draft.KindPrestige,
		Cost:    costOf(draft.Silicon, draft.Silicon, draft.Timber),
		Effects: []draft.Effect{prestige(5)}}, 3, 4)
	add(draft.Card{Name: "Executive Suite", Kind: draft.KindPrestige,
		Cost: costOf(draft.Steel, draft.Timber, draft.Concrete, draft.Silicon,
			draft.Software, draft.Design, draft.Media),
		Effects: []draft.Effect{prestige(7)}}, 3, 7)
	add(draft.Card{Name: "Civic Center", Kind: draft.KindPrestige,
		Cost:    costOf(draft.Concrete, draft.Concrete, draft.Steel, draft.Software),
		Effects: []draft.Effect{prestige(6)}}, 3, 5, 6)
	add(draft.Card{Name: CardAnnualGala, Kind: draft.KindPrestige,
		Cost:    costOf(draft.Silicon, draft.Silicon, draft.Software, draft.Design, draft.Media),
		Effects: []draft.Effect{prestige(7)}}, 3, 6)
	add(draft.Card{Name: CardBoardroom, Kind: draft.KindPrestige,
		Cost:    costOf(draft.Timber, draft.Timber, draft.Concrete, draft.Steel),
		Effects: []draft.Effect{prestige(6)}}, 3, 5)

	// Commerce: funding now, points later, keyed to the owner's tableau.
	add(draft.Card{Name: CardFreightTerminal, Kind: draft.KindCommerce,
		Cost: costOf(draft.Timber, draft.Steel, draft.Design),
		Effects: []draft.Effect{
			draft.GainFunding{Amount: 1, Per: draft.PerKind(draft.ScopeSelf, draft.KindSupplier)},
			draft.AddVictory{Category: draft.CategoryCommerce, Points: 1,
				Per: draft.PerKind(draft.ScopeSelf, draft.KindSupplier)},
		}}, 3, 4)
	add(draft.Card{Name: CardSignalTower, Kind: draft.KindCommerce,
		Cost: costOf(draft.Concrete, draft.Software),
		Effects: []draft.Effect{
			draft.GainFunding{Amount: 1, Per: draft.PerKind(draft.ScopeSelf, draft.KindCommerce)},
			draft.AddVictory{Category: draft.CategoryCommerce, Points: 1,
				Per: draft.PerKind(draft.ScopeSelf, draft.KindCommerce)},
		}}, 3, 6)
	add(draft.Card{Name: "Trade Chamber", Kind: draft.KindCommerce,
		Cost: costOf(draft.Silicon, draft.Silicon, draft.Media),
		Effects: []draft.Effect{
			draft.GainFunding{Amount: 2, Per: draft.PerKind(draft.ScopeSelf, draft.KindWorkshop)},
			draft.AddVictory{Category: draft.CategoryCommerce, Points: 2,
				Per: draft.PerKind(draft.ScopeSelf, draft.KindWorkshop)},
		}}, 3, 4)
	add(draft.Card{Name: CardConventionArena, Kind: draft.KindCommerce,
		Cost: costOf(draft.Concrete, draft.Concrete, draft.Steel),
		Effects: []draft.Effect{
			draft.GainFunding{Amount: 3, Per: draft.PerStage(draft.ScopeSelf)},
			draft.AddVictory{Category: draft.CategoryCommerce, Points: 1,
				Per: draft.PerStage(draft.ScopeSelf)},
		}}, 3, 5, 7)

	// Poaching.
	add(draft.Card{Name: CardPerimeterControl, Kind: draft.KindPoaching,
		Cost:    costOf(draft.Concrete, draft.Concrete, draft.Steel),
		Effects: []draft.Effect{draft.Poaching{Strength: 3}}}, 3, 7)
	add(draft.Card{Name: CardRapidResponse, Kind: draft.KindPoaching,
		Cost:    costOf(draft.Steel, draft.Steel, draft.Concrete, draft.Concrete),
		Effects: []draft.Effect{draft.Poaching{Strength: 3}}}, 3, 5, 6)
	add(draft.Card{Name: CardCyberDefense, Kind: draft.KindPoaching,
		Cost:    costOf(draft.Silicon, draft.Silicon, draft.Silicon, draft.Timber),
		Effects: []draft.Effect{draft.Poaching{Strength: 3}}}, 3, 5)
	add(draft.Card{Name: "Asset Protection", Kind: draft.KindPoaching,
		Cost:    costOf(draft.Timber, draft.Timber, draft.Steel, draft.Design),
		Effects: []draft.Effect{draft.Poaching{Strength: 3}}}, 3, 4, 7)

	// Research.
	add(draft.Card{Name: CardInnovationHub, Kind: draft.KindResearch,
		Cost:    costOf(draft.Steel, draft.Steel, draft.Software, draft.Design),
		Effects: []draft.Effect{draft.Research{Tag: draft.Engineering}}}, 3, 7)
	add(draft.Card{Name: CardCorporateUni, Kind: draft.KindResearch,
		Cost:    costOf(draft.Timber, draft.Timber, draft.Software, draft.Media),
		Effects: []draft.Effect{draft.Research{Tag: draft.Analytics}}}, 3, 4)
	add(draft.Card{Name: CardThinkTank, Kind: draft.KindResearch,
		Cost:    costOf(draft.Silicon, draft.Silicon, draft.Design, draft.Media),
		Effects: []draft.Effect{draft.Research{Tag: draft.Biotech}}}, 3, 6)
	add(draft.Card{Name: "Field Institute", Kind: draft.KindResearch,
		Cost:    costOf(draft.Timber, draft.Media, draft.Design),
		Effects: []draft.Effect{draft.Research{Tag: draft.Engineering}}}, 5, 7)
	add(draft.Card{Name: "Research Campus", Kind: draft.KindResearch,
		Cost:    costOf(draft.Concrete, draft.Concrete, draft.Concrete, draft.Software),
		Effects: []draft.Effect{draft.Research{Tag: draft.Biotech}}}, 4, 6)

	return deck
}

func communityCards() []*draft.Card {
	card := func(name string, cost draft.Cost, effects ...draft.Effect) *draft.Card {
		return &draft.Card{
			Name: name, Age: draft.AgeIII, Kind: draft.KindCommunity,
			MinPlayers: 3, Cost: cost, Effects: effects,
		}
	}
	perNeighbors := func(points int, kind draft.Kind) draft.AddVictory {
		return draft.AddVictory{Category: draft.CategoryCommunity, Points: points,
			Per: draft.PerKind(draft.ScopeNeighbors, kind)}
	}
	return []*draft.Card{
		card("Suppliers Collective",
			costOf(draft.Steel, draft.Steel, draft.Silicon, draft.Timber, draft.Concrete),
			perNeighbors(1, draft.KindSupplier)),
		card("Makers Cooperative",
			costOf(draft.Steel, draft.Steel, draft.Silicon, draft.Silicon),
			perNeighbors(2, draft.KindWorkshop)),
		card("Commerce Circle",
			costOf(draft.Software, draft.Design, draft.Media),
			perNeighbors(1, draft.KindCommerce)),
		card("Culture Trust",
			costOf(draft.Timber, draft.Timber, draft.Timber, draft.Concrete, draft.Design),
			perNeighbors(1, draft.KindPrestige)),
		card("Talent Network",
			costOf(draft.Silicon, draft.Silicon, draft.Silicon, draft.Media, draft.Design),
			perNeighbors(1, draft.KindResearch)),
		card("Contractors Alliance",
			costOf(draft.Silicon, draft.Silicon, draft.Silicon, draft.Software),
			perNeighbors(1, draft.KindPoaching)),
		card("Strategy Council",
			costOf(draft.Steel, draft.Steel, draft.Concrete, draft.Design),
			draft.AddVictory{Category: draft.CategoryCommunity, Points: 1,
				Per: draft.PerDefeat(draft.ScopeNeighbors)}),
		card("Logistics League",
			costOf(draft.Timber, draft.Timber, draft.Timber, draft.Software, draft.Media),
			draft.AddVictory{Category: draft.CategoryCommunity, Points: 1,
				Per: draft.PerKind(draft.ScopeSelf, draft.KindSupplier)},
			draft.AddVictory{Category: draft.CategoryCommunity, Points: 1,
				Per: draft.PerKind(draft.ScopeSelf, draft.KindWorkshop)},
			draft.AddVictory{Category: draft.CategoryCommunity, Points: 1,
				Per: draft.PerKind(draft.ScopeSelf, draft.KindCommunity)}),
		card("Science Syndicate",
			costOf(draft.Timber, draft.Timber, draft.Steel, draft.Steel, draft.Media),
			draft.Wildcard{}),
		card("Construction Consortium",
			costOf(draft.Concrete, draft.Concrete, draft.Silicon, draft.Silicon, draft.Software),
			draft.AddVictory{Category: draft.CategoryCommunity, Points: 1,
				Per: draft.PerStage(draft.ScopeSelfAndNeighbors)}),
	}
}

func companies() []draft.Company {
	base := func(company string, r draft.Resource) *draft.Card {
		return &draft.Card{
			Name: company + " HQ", Kind: draft.KindBase,
			Effects: []draft.Effect{draft.Fixed(draft.Of(r, 1))},
		}
	}
	stage := func(company string, n int, cost draft.Cost, effects ...draft.Effect) *draft.Card {
		return &draft.Card{
			Name: company + " Stage " + [...]string{"I", "II", "III", "IV"}[n-1],
			Kind: draft.KindStage, Cost: cost, Effects: effects,
		}
	}
	side := func(co draft.Company, s string, basecard *draft.Card, stages ...*draft.Card) draft.CompanyProfile {
		return draft.CompanyProfile{Company: co.Name, Side: s, Base: basecard, Stages: stages}
	}

	var out []draft.Company

	// Meridian Analytics starts on software and branches into flexible
	// production.
	{
		co := draft.Company{Name: "Meridian Analytics"}
		hq := base(co.Name, draft.Software)
		co.SideA = side(co, "A", hq,
			stage(co.Name, 1, costOf(draft.Concrete, draft.Concrete), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Steel, draft.Steel),
				draft.Choice(draft.Steel, draft.Timber, draft.Concrete, draft.Silicon)),
			stage(co.Name, 3, costOf(draft.Software, draft.Software), stageVP(7)))
		co.SideB = side(co, "B", hq,
			stage(co.Name, 1, costOf(draft.Timber, draft.Timber),
				draft.Choice(draft.Steel, draft.Timber, draft.Concrete, draft.Silicon)),
			stage(co.Name, 2, costOf(draft.Silicon, draft.Silicon, draft.Steel),
				draft.Choice(draft.Software, draft.Design, draft.Media)),
			stage(co.Name, 3, costOf(draft.Concrete, draft.Concrete, draft.Concrete, draft.Software),
				stageVP(7)))
		out = append(out, co)
	}

	// Helix Dynamics chases research: wildcards on side A, the seventh-card
	// play on side B.
	{
		co := draft.Company{Name: "Helix Dynamics"}
		hq := base(co.Name, draft.Silicon)
		co.SideA = side(co, "A", hq,
			stage(co.Name, 1, costOf(draft.Silicon, draft.Silicon), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Timber, draft.Timber, draft.Timber), draft.Wildcard{}),
			stage(co.Name, 3, costOf(draft.Silicon, draft.Silicon, draft.Silicon, draft.Silicon),
				stageVP(7)))
		co.SideB = side(co, "B", hq,
			stage(co.Name, 1, costOf(draft.Timber, draft.Silicon), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Design, draft.Design), draft.Efficiency{}),
			stage(co.Name, 3, costOf(draft.Steel, draft.Steel, draft.Steel, draft.Media),
				draft.Wildcard{}))
		out = append(out, co)
	}

	// Aurora Ventures turns stages into funds.
	{
		co := draft.Company{Name: "Aurora Ventures"}
		hq := base(co.Name, draft.Media)
		co.SideA = side(co, "A", hq,
			stage(co.Name, 1, costOf(draft.Concrete, draft.Concrete), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Timber, draft.Timber), draft.GainFunding{Amount: 9}),
			stage(co.Name, 3, costOf(draft.Media, draft.Media, draft.Software), stageVP(7)))
		co.SideB = side(co, "B", hq,
			stage(co.Name, 1, costOf(draft.Concrete, draft.Concrete),
				stageVP(2), draft.GainFunding{Amount: 4}),
			stage(co.Name, 2, costOf(draft.Timber, draft.Timber),
				stageVP(3), draft.GainFunding{Amount: 4}),
			stage(co.Name, 3, costOf(draft.Software, draft.Design, draft.Media),
				stageVP(5), draft.GainFunding{Amount: 4}))
		out = append(out, co)
	}

	// Granite Holdings is pure points, with a four-stage B side.
	{
		co := draft.Company{Name: "Granite Holdings"}
		hq := base(co.Name, draft.Concrete)
		co.SideA = side(co, "A", hq,
			stage(co.Name, 1, costOf(draft.Timber, draft.Timber), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Concrete, draft.Concrete, draft.Concrete), stageVP(5)),
			stage(co.Name, 3, costOf(draft.Concrete, draft.Concrete, draft.Concrete, draft.Concrete),
				stageVP(7)))
		co.SideB = side(co, "B", hq,
			stage(co.Name, 1, costOf(draft.Timber, draft.Timber), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Concrete, draft.Concrete, draft.Concrete), stageVP(5)),
			stage(co.Name, 3, costOf(draft.Silicon, draft.Silicon, draft.Silicon), stageVP(5)),
			stage(co.Name, 4, costOf(draft.Concrete, draft.Concrete, draft.Concrete, draft.Concrete,
				draft.Media), stageVP(7)))
		out = append(out, co)
	}

	// Cascade Industries rebuilds from the discard pile.
	{
		co := draft.Company{Name: "Cascade Industries"}
		hq := base(co.Name, draft.Design)
		co.SideA = side(co, "A", hq,
			stage(co.Name, 1, costOf(draft.Silicon, draft.Silicon), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Steel, draft.Steel, draft.Steel), draft.Recycling{}),
			stage(co.Name, 3, costOf(draft.Design, draft.Design, draft.Media), stageVP(7)))
		co.SideB = side(co, "B", hq,
			stage(co.Name, 1, costOf(draft.Steel, draft.Steel), stageVP(2), draft.Recycling{}),
			stage(co.Name, 2, costOf(draft.Concrete, draft.Concrete, draft.Concrete),
				stageVP(1), draft.Recycling{}),
			stage(co.Name, 3, costOf(draft.Software, draft.Design, draft.Media), draft.Recycling{}))
		out = append(out, co)
	}

	// Summit Partners trades and copies: a free build per age on side A,
	// cheap raw imports and a community copy on side B.
	{
		co := draft.Company{Name: "Summit Partners"}
		hq := base(co.Name, draft.Timber)
		co.SideA = side(co, "A", hq,
			stage(co.Name, 1, costOf(draft.Timber, draft.Timber), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Concrete, draft.Concrete),
				draft.Opportunity{Age: draft.AgeI},
				draft.Opportunity{Age: draft.AgeII},
				draft.Opportunity{Age: draft.AgeIII}),
			stage(co.Name, 3, costOf(draft.Steel, draft.Steel, draft.Design), stageVP(7)))
		co.SideB = side(co, "B", hq,
			stage(co.Name, 1, costOf(draft.Timber, draft.Timber),
				draft.Discount{Directions: draft.BothDirections, Price: 1}),
			stage(co.Name, 2, costOf(draft.Concrete, draft.Concrete, draft.Steel), stageVP(5)),
			stage(co.Name, 3, costOf(draft.Media, draft.Media), draft.CopyCommunity{}))
		out = append(out, co)
	}

	// Ironclad Security fights for poaching points.
	{
		co := draft.Company{Name: "Ironclad Security"}
		hq := base(co.Name, draft.Steel)
		co.SideA = side(co, "A", hq,
			stage(co.Name, 1, costOf(draft.Timber, draft.Timber), stageVP(3)),
			stage(co.Name, 2, costOf(draft.Silicon, draft.Silicon, draft.Silicon),
				draft.Poaching{Strength: 2}),
			stage(co.Name, 3, costOf(draft.Steel, draft.Steel, draft.Steel, draft.Steel),
				stageVP(7)))
		co.SideB = side(co, "B", hq,
			stage(co.Name, 1, costOf(draft.Concrete, draft.Concrete, draft.Concrete),
				draft.Poaching{Strength: 1}, stageVP(3), draft.GainFunding{Amount: 3}),
			stage(co.Name, 2, costOf(draft.Steel, draft.Steel, draft.Steel, draft.Steel),
				draft.Poaching{Strength: 1}, stageVP(4), draft.GainFunding{Amount: 4}))
		out = append(out, co)
	}

	return out
}
