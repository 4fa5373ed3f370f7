package locale

var tableEN = Table{
	// Generic
	"DEFAULT_SAFE_REASON": "Weather and field conditions look stable for the {stage} stage.",
	"DEFAULT_SAFE_ACTION": "Continue your regular schedule. Re-check the signal after the next weather change.",

	"OBSERVED_ISSUE_REASON":      "You reported: {issues}. No weather rule matched, but field symptoms need attention.",
	"OBSERVED_ISSUE_ACTION":      "Inspect 4-5 spots across the field. Photograph affected plants and use the scan tool or ask the Kisan Sahayak chat.",
	"OBSERVED_ISSUE_IMPACT":      "Untreated symptoms ({issues}) can spread during the {stage} stage.",
	"OBSERVED_ISSUE_CONSEQUENCE": "Yield loss if the underlying pest or deficiency is confirmed late.",

	"FINANCIAL_ALERT_REASON":      "Sowing and harvest windows are when input costs and price decisions hit hardest.",
	"FINANCIAL_ALERT_ACTION":      "Check PM-Kisan installment status, KCC credit limit and your mandi's procurement dates before spending.",
	"FINANCIAL_ALERT_IMPACT":      "Selling immediately at harvest or buying inputs on informal credit usually costs 10-20% extra.",
	"FINANCIAL_ALERT_CONSEQUENCE": "Missed procurement windows mean selling below MSP to private traders.",

	"IGNORE_RISK_HOURS": "Act within {h} hours",
	"IGNORE_RISK_DAYS":  "Act within {d} days",

	"URGENCY_IMMEDIATE":  "Immediate",
	"URGENCY_CAUTION":    "Caution",
	"URGENCY_NORMAL":     "Normal",
	"URGENCY_SUPPORT":    "Institutional Support",
	"URGENCY_FIELD_RISK": "Field Risk",

	// Rice
	"RICE_FLOOD_ALERT_REASON":      "Very heavy rain is forecast ({humidity}% humidity already). Paddy fields flood fast in your area.",
	"RICE_FLOOD_ALERT_ACTION":      "Open drainage channels now and move stored grain, fertilizer and pumps above ground level.",
	"RICE_FLOOD_ALERT_IMPACT":      "Standing water beyond 48 hours suffocates the crop at the {stage} stage.",
	"RICE_FLOOD_ALERT_CONSEQUENCE": "Total loss of submerged patches and washed-away topsoil.",

	"RICE_BLAST_ALERT_REASON":      "Humidity at {humidity}% with {temp}°C is ideal for rice blast fungus during {stage}.",
	"RICE_BLAST_ALERT_ACTION":      "Check leaves for grey spindle-shaped lesions. Spray tricyclazole at the first sign; avoid excess urea.",
	"RICE_BLAST_ALERT_IMPACT":      "Neck blast at flowering can destroy the panicle before grain fill.",
	"RICE_BLAST_ALERT_CONSEQUENCE": "30-60% yield loss within two weeks if lesions reach the neck node.",

	"RICE_PEST_WARNING_REASON": "Warm ({temp}°C) and humid ({humidity}%) weather favours brown planthopper build-up.",
	"RICE_PEST_WARNING_ACTION": "Part the crop at 4-5 spots and look at the stem base for hoppers. Drain the field for 3-4 days if found.",
	"RICE_PEST_WARNING_IMPACT": "Hopper burn spreads in circular patches once the colony establishes.",

	"RICE_RAIN_WARNING_REASON": "Significant rain is likely in the coming days.",
	"RICE_RAIN_WARNING_ACTION": "Delay harvesting and keep cut paddy covered. Do not spray before the rain passes.",
	"RICE_RAIN_WARNING_IMPACT": "Wet grain above 14% moisture is rejected or discounted at procurement.",

	"RICE_IRRIGATION_WARNING_REASON": "High heat ({temp}°C) with dry air ({humidity}%) is drying the field faster than normal.",
	"RICE_IRRIGATION_WARNING_ACTION": "Irrigate in the evening and maintain 2-3 cm standing water. Avoid midday irrigation.",
	"RICE_IRRIGATION_WARNING_IMPACT": "Moisture stress during {stage} reduces tillering and grain count.",

	// Wheat
	"WHEAT_RUST_ALERT_REASON":      "Cool, moist conditions ({temp}°C, {humidity}% humidity) favour yellow rust during {stage}.",
	"WHEAT_RUST_ALERT_ACTION":      "Look for yellow pustule stripes on leaves. Spray propiconazole on first sighting and inform neighbouring farms.",
	"WHEAT_RUST_ALERT_IMPACT":      "Rust spreads field to field on wind within days.",
	"WHEAT_RUST_ALERT_CONSEQUENCE": "Up to 40% grain shrivelling if it reaches the flag leaf.",

	"WHEAT_DROUGHT_ALERT_REASON":      "Extreme heat ({temp}°C) with very dry air and no rain in sight.",
	"WHEAT_DROUGHT_ALERT_ACTION":      "Give a light protective irrigation now; mulch between rows if water is limited.",
	"WHEAT_DROUGHT_ALERT_IMPACT":      "Heat plus moisture stress forces early maturity with thin grain.",
	"WHEAT_DROUGHT_ALERT_CONSEQUENCE": "Irreversible yield loss once the crop passes wilting point.",

	"WHEAT_RAIN_HARVEST_WARNING_REASON": "Rain is forecast over your harvest window.",
	"WHEAT_RAIN_HARVEST_WARNING_ACTION": "Advance harvesting if grain is at maturity; keep harvested produce tarpaulin-covered.",
	"WHEAT_RAIN_HARVEST_WARNING_IMPACT": "Lodging and grain discolouration cut the mandi price sharply.",

	"WHEAT_PEST_WARNING_REASON": "Mild, humid weather ({temp}°C, {humidity}%) is building up aphid colonies.",
	"WHEAT_PEST_WARNING_ACTION": "Check undersides of leaves. Spray neem oil or imidacloprid only if colonies exceed 5 per tiller.",
	"WHEAT_PEST_WARNING_IMPACT": "Aphids drain sap and spread viral disease during {stage}.",

	"WHEAT_POST_HARVEST_WARNING_REASON": "Humidity at {humidity}% is too high for safe grain storage.",
	"WHEAT_POST_HARVEST_WARNING_ACTION": "Sun-dry grain to below 12% moisture before bagging. Store bags on wooden pallets, never on the floor.",
	"WHEAT_POST_HARVEST_WARNING_IMPACT": "Damp storage invites weevils and fungus within weeks.",

	// Cotton
	"COTTON_PEST_ALERT_REASON":      "Conditions ({temp}°C, {humidity}%) or your reported symptoms point to bollworm activity.",
	"COTTON_PEST_ALERT_ACTION":      "Install pheromone traps today and scout flowers for rosette shape. Spray only past the economic threshold.",
	"COTTON_PEST_ALERT_IMPACT":      "Pink bollworm inside the boll is unreachable by spray once established.",
	"COTTON_PEST_ALERT_CONSEQUENCE": "Boll damage directly cuts the picking weight and staple quality.",

	"COTTON_DROUGHT_ALERT_REASON":      "Severe heat ({temp}°C) with no rain forecast is beyond cotton's stress tolerance.",
	"COTTON_DROUGHT_ALERT_ACTION":      "Irrigate alternate furrows to stretch available water. Spray 2% KNO3 to help the crop hold squares.",
	"COTTON_DROUGHT_ALERT_IMPACT":      "Square and young boll shedding accelerates above 40°C.",
	"COTTON_DROUGHT_ALERT_CONSEQUENCE": "Shed fruiting points do not recover this season.",

	"COTTON_RAIN_WARNING_REASON": "Heavy rain during flowering raises boll-rot risk.",
	"COTTON_RAIN_WARNING_ACTION": "Ensure furrow drainage; spray copper oxychloride after the rain stops if bolls stay wet.",
	"COTTON_RAIN_WARNING_IMPACT": "Rotted bolls stain lint and drop the grade.",

	// Maize
	"MAIZE_FLOOD_ALERT_REASON":      "Very heavy rain is forecast. Maize does not tolerate waterlogging.",
	"MAIZE_FLOOD_ALERT_ACTION":      "Cut drainage furrows across the slope today. Earth up plant bases where water collects.",
	"MAIZE_FLOOD_ALERT_IMPACT":      "24 hours of standing water kills maize roots at the {stage} stage.",
	"MAIZE_FLOOD_ALERT_CONSEQUENCE": "Lodged, yellowed patches that will not fill grain.",

	"MAIZE_PEST_ALERT_REASON":      "Warm humid weather ({temp}°C, {humidity}%) or reported symptoms indicate fall armyworm.",
	"MAIZE_PEST_ALERT_ACTION":      "Check whorls for ragged feeding and frass. Apply emamectin benzoate into the whorl, not as a broad spray.",
	"MAIZE_PEST_ALERT_IMPACT":      "Armyworm can defoliate a young crop in under a week.",
	"MAIZE_PEST_ALERT_CONSEQUENCE": "Whorl damage at {stage} stunts the plant permanently.",

	"MAIZE_NUTRIENT_WARNING_REASON": "Reported symptoms ({issues}) match nutrient deficiency in maize.",
	"MAIZE_NUTRIENT_WARNING_ACTION": "Top-dress urea if lower leaves yellow in a V; apply DAP near roots if stems turn purple.",
	"MAIZE_NUTRIENT_WARNING_IMPACT": "Deficiency during {stage} caps the cob size early.",

	// Mustard
	"MUSTARD_PEST_WARNING_REASON": "Cool, humid weather ({temp}°C, {humidity}%) builds mustard aphid colonies fast.",
	"MUSTARD_PEST_WARNING_ACTION": "Nip off and destroy infested twig tips in the morning. Spray only if 25+ aphids per central twig.",
	"MUSTARD_PEST_WARNING_IMPACT": "Aphids on flowering shoots cut pod set directly.",

	"MUSTARD_RAIN_ALERT_REASON":      "Unseasonal rain during flowering washes pollen and invites white rust.",
	"MUSTARD_RAIN_ALERT_ACTION":      "Don't irrigate before the rain. Drain standing water within hours; spray mancozeb once foliage dries.",
	"MUSTARD_RAIN_ALERT_IMPACT":      "Flower drop plus white rust can take a third of the pods.",
	"MUSTARD_RAIN_ALERT_CONSEQUENCE": "Thin, shrivelled seed with low oil recovery.",

	"MUSTARD_POST_HARVEST_WARNING_REASON": "Humid air ({humidity}%) slows drying of cut mustard.",
	"MUSTARD_POST_HARVEST_WARNING_ACTION": "Thresh only fully dry stacks; a damp stack heats up and darkens the seed.",
	"MUSTARD_POST_HARVEST_WARNING_IMPACT": "Dark or sprouted seed trades well under the oil-mill rate.",
}
