package menu

import (
	"github.com/shopspring/decimal"
)

// Menu categories as printed on the physical menu.
const (
	CategoryHouseSpecial    = "HOUSE SPECIAL"
	CategoryAppetizers      = "APPETIZERS"
	CategorySoup            = "SOUP"
	CategoryFowl            = "FOWL"
	CategoryPork            = "PORK"
	CategoryBeef            = "BEEF"
	CategorySeafood         = "SEAFOOD"
	CategoryVegetables      = "VEGETABLES"
	CategoryWontonNoodle    = "WONTON AND NOODLE SOUP"
	CategoryFamilyDinner    = "FAMILY DINNER"
	CategoryChowMein        = "CHOW MEIN"
	CategoryPanFriedNoodles = "PAN FRIED NOODLES"
	CategoryFriedRice       = "FRIED RICE"
	CategoryChowFun         = "CHOW FUN"
	CategoryOnRice          = "ON RICE"
	CategoryBeverages       = "BEVERAGES"
	CategoryDessert         = "DESSERT"
)

func d(price string) decimal.Decimal {
	return decimal.RequireFromString(price)
}

func item(name, price, category string) Entry {
	return Entry{CanonicalName: name, Price: d(price), Category: category}
}

// menuEntries is the full printed menu in menu order. The canonical names
// keep the menu's own spelling, including its abbreviations ("W/",
// "B.B.Q.") and misprints ("SUPERMEN", "PEPPING"); the normalizer bridges
// those to spoken forms.
var menuEntries = []Entry{
	item("SPICY SALT PEPPER SHRIMP", "16.25", CategoryHouseSpecial),
	item("MINCED CHICKEN W/ LETTUCE CUP", "13.25", CategoryHouseSpecial),
	item("WALNUT PRAWNS", "16.25", CategoryHouseSpecial),
	item("RAINBOW FISH FILLET", "13.25", CategoryHouseSpecial),
	item("ORANGE PEEL BEEF", "13.25", CategoryHouseSpecial),
	item("ORANGE PEEL CHICKEN", "13.25", CategoryHouseSpecial),
	item("GINGER GREEN ONION W/ OYSTER", "13.25", CategoryHouseSpecial),
	item("CRISPY FRIED OYSTER", "14.25", CategoryHouseSpecial),
	item("SESAME CHICKEN", "13.25", CategoryHouseSpecial),
	item("CRISPY FRIED SQUID W/ SPICY PEPPER", "14.25", CategoryHouseSpecial),
	item("FRIED TOFU W/ GREEN BEAN IN DRY SPICY GARLIC", "12.75", CategoryHouseSpecial),
	item("EGGPLANT W/ CHICKEN, SHRIMP IN SPECIAL SAUCE", "14.75", CategoryHouseSpecial),
	item("SPICY SALT PEPPER PORK CHOP", "13.25", CategoryHouseSpecial),
	item("YELLOW ONION PORK CHOP", "13.25", CategoryHouseSpecial),
	item("SPICY SALT PEPPER CHICKEN WINGS(10)", "14.25", CategoryHouseSpecial),
	item("GENERALS CHICKEN WINGS(10)", "14.25", CategoryHouseSpecial),

	item("HONEY GLAZED BARBECUED PORK", "10.75", CategoryAppetizers),
	item("CRISPY FRIED PRAWNS (10)", "14.75", CategoryAppetizers),
	item("GOLDEN POT STICKERS (6)", "9.00", CategoryAppetizers),
	item("SPRING EGG ROLLS (4)", "9.00", CategoryAppetizers),
	item("CHICKEN SALAD", "8.75", CategoryAppetizers),

	item("WONTON SOUP", "9.00", CategorySoup),
	item("MINCED BEEF W/ EGG WHITE SOUP", "9.00", CategorySoup),
	item("MIXED VEGETABLES SOUP", "9.00", CategorySoup),
	item("SEAWEED W/ EGG FLOWER SOUP", "9.00", CategorySoup),
	item("SEAFOOD W/ BEAN CAKE SOUP", "10.00", CategorySoup),
	item("WOR WONTON SOUP", "10.50", CategorySoup),
	item("CHICKEN W/ CORN SOUP", "11.50", CategorySoup),

	item("ALMOND CHICKEN", "13.25", CategoryFowl),
	item("SWEET & SOUR CHICKEN", "13.25", CategoryFowl),
	item("LEMON CHICKEN", "13.25", CategoryFowl),
	item("CHICKEN W/ DOUBLE MUSHROOMS", "13.25", CategoryFowl),
	item("RAINBOW CHICKEN", "13.25", CategoryFowl),
	item("CHICKEN W/ BLACK BEAN SAUCE", "13.25", CategoryFowl),
	item("CURRY CHICKEN", "13.25", CategoryFowl),
	item("KUNG PAO CHICKEN", "13.25", CategoryFowl),
	item("CHICKEN W/ BROCCOLI", "13.25", CategoryFowl),
	item("ROASTED DUCK HALF", "14.00", CategoryFowl),
	item("ROASTED DUCK WHOLE", "26.00", CategoryFowl),
	item("FRIED CHICKEN HALF", "12.00", CategoryFowl),
	item("CHICKEN W/ MIXED VEGETABLES", "13.25", CategoryFowl),

	item("CANTONESE STYLE SPARERIBS", "13.25", CategoryPork),
	item("SPICY HOT BEAN CURD W/ MINCED PORK", "13.25", CategoryPork),
	item("SUCCULENT SPICY PORK W/ GARLIC SAUCE", "13.25", CategoryPork),
	item("SUPERMEN SWEET AND SOUR PORK", "13.25", CategoryPork),
	item("MU SHU PORK (FOUR PAN CAKE)", "13.25", CategoryPork),
	item("SPARERIBS W/ BLACK BEAN SAUCE", "13.25", CategoryPork),
	item("BARBECUED PORK W/ BEAN CAKE", "13.25", CategoryPork),
	item("BARBECUED PORK W/ MIXED VEGETABLES", "13.25", CategoryPork),

	item("PEPPING SPICY BEEF", "14.25", CategoryBeef),
	item("MONGOLIAN BEEF", "14.25", CategoryBeef),
	item("CURRY BEEF", "14.25", CategoryBeef),
	item("BEEF W/ BLACK BEAN SAUCE", "14.25", CategoryBeef),
	item("BEEF W/ BROCCOLI", "14.25", CategoryBeef),
	item("BEEF W/ OYSTER SAUCE", "14.25", CategoryBeef),
	item("BEEF W/ SNOW PEAS", "14.25", CategoryBeef),
	item("BEEF W/ MIXED VEGETABLES", "14.25", CategoryBeef),

	item("SHRIMP W/ CASHEW", "14.50", CategorySeafood),
	item("SHRIMP W/ SNOW PEAS", "14.50", CategorySeafood),
	item("SHRIMP W/ DOUBLE MUSHROOMS", "14.50", CategorySeafood),
	item("SHRIMP W/ LOBSTER SAUCE", "14.50", CategorySeafood),
	item("SUPERMEN SWEET & SOUR SHRIMP", "14.50", CategorySeafood),
	item("KUNG PAO SHRIMP", "14.50", CategorySeafood),
	item("CURRY SHRIMP", "14.50", CategorySeafood),
	item("SEAFOOD DELUXE", "14.50", CategorySeafood),
	item("CLAMS W/ GINGER SCALLIONS", "14.50", CategorySeafood),
	item("CLAMS W/ BLACK BEAN SAUCE", "14.50", CategorySeafood),
	item("BRAISED FISH FILLET", "14.50", CategorySeafood),
	item("FISH FILLET W/ BLACK BEAN SAUCE", "14.50", CategorySeafood),
	item("SWEET AND SOUR WHOLE FISH", "22.00", CategorySeafood),
	item("STEAMED WHOLE FISH", "20.00", CategorySeafood),

	item("FRESH VEGETABLES DELUXE", "11.00", CategoryVegetables),
	item("SNOW PEAS W/ WATER CHESTNUTS", "11.00", CategoryVegetables),
	item("EGGPLANT W/ GARLIC SAUCE", "11.00", CategoryVegetables),
	item("BROCCOLI W/ OYSTER SAUCE", "11.00", CategoryVegetables),
	item("DOUBLE MUSHROOM W/ OYSTER SAUCE", "11.00", CategoryVegetables),
	item("VEGETARIAN'S SPECIAL", "11.00", CategoryVegetables),
	item("BRAISED BEAN CAKE", "11.00", CategoryVegetables),
	item("MIXED VEGETABLES W/ BEAN CAKE", "11.00", CategoryVegetables),
	item("HOUSE SPECIAL BEAN CAKE", "12.00", CategoryVegetables),
	item("KUNG PAO TO FU", "12.00", CategoryVegetables),

	item("BARBECUED PORK WONTON SOUP", "10.50", CategoryWontonNoodle),
	item("BEEF WONTON SOUP", "10.50", CategoryWontonNoodle),
	item("CHICKEN WONTON SOUP", "10.50", CategoryWontonNoodle),
	item("ROASTED DUCK WONTON SOUP", "10.50", CategoryWontonNoodle),
	item("SHRIMP WONTON SOUP", "10.50", CategoryWontonNoodle),
	item("BARBECUED PORK NOODLE SOUP", "9.75", CategoryWontonNoodle),
	item("BEEF NOODLE SOUP", "9.75", CategoryWontonNoodle),
	item("CHICKEN NOODLE SOUP", "9.75", CategoryWontonNoodle),
	item("ROASTED DUCK NOODLE SOUP", "10.50", CategoryWontonNoodle),
	item("SHRIMP NOODLE SOUP", "10.50", CategoryWontonNoodle),

	{CanonicalName: "HONG KONG STYLE (MINIMUM FOR 2 PERSON)", Price: d("15.75"), Category: CategoryFamilyDinner, DisplayPrice: "15.75 PER PERSON"},
	{CanonicalName: "PEKING STYLE (MINIMUM FOR 2 PERSON)", Price: d("15.75"), Category: CategoryFamilyDinner, DisplayPrice: "15.75 PER PERSON"},

	item("HOUSE SPECIAL CHOW MEIN", "12.25", CategoryChowMein),
	item("SHRIMP CHOW MEIN", "10.75", CategoryChowMein),
	item("CHICKEN CHOW MEIN", "10.00", CategoryChowMein),
	item("BEEF W/ TOMATO CHOW MEIN", "10.50", CategoryChowMein),

	item("HOUSE SPECIAL PAN FRIED NOODLES", "13.00", CategoryPanFriedNoodles),
	item("SEAFOOD PAN FRIED NOODLES", "13.00", CategoryPanFriedNoodles),
	item("BEEF W/ TENDER GREEN PAN FRIED NOODLES", "11.25", CategoryPanFriedNoodles),
	item("BEEF W/ BROCCOLI PAN FRIED NOODLES", "11.25", CategoryPanFriedNoodles),
	item("BEEF W/ BLACK BEAN SAUCE PAN FRIED NOODLES", "11.25", CategoryPanFriedNoodles),
	item("CHICKEN W/ TENDER GREEN PAN FRIED NOODLES", "11.25", CategoryPanFriedNoodles),
	item("CHICKEN W/ BLACK BEAN SAUCE PAN FRIED NOODLES", "11.25", CategoryPanFriedNoodles),
	item("MIXED VEGETABLE W/ TENDER GREEN PAN FRIED NOODLES", "12.25", CategoryPanFriedNoodles),
	item("SHRIMP W/ MIXED VEGETABLE PAN FRIED NOODLES", "12.25", CategoryPanFriedNoodles),
	item("SHRIMP W/ BLACK BEAN SAUCE PAN FRIED NOODLES", "12.25", CategoryPanFriedNoodles),

	item("HOUSE SPECIAL FRIED RICE", "12.00", CategoryFriedRice),
	item("SHRIMP FRIED RICE", "11.00", CategoryFriedRice),
	item("YANG CHOW FRIED RICE", "11.00", CategoryFriedRice),
	item("BARBECUED PORK FRIED RICE", "10.00", CategoryFriedRice),
	item("CHICKEN FRIED RICE", "10.00", CategoryFriedRice),
	item("BEEF FRIED RICE", "10.00", CategoryFriedRice),
	item("FRESH VEGETABLES FRIED RICE", "10.00", CategoryFriedRice),
	item("CHICKEN W/ SALTED FISH FRIED RICE", "12.25", CategoryFriedRice),
	item("STEAMED RICE", "1.75", CategoryFriedRice),

	item("HOUSE SPECIAL CHOW FUN", "13.00", CategoryChowFun),
	item("SEAFOOD CHOW FUN", "13.00", CategoryChowFun),
	item("SHRIMP W/ TENDER GREEN CHOW FUN", "11.50", CategoryChowFun),
	item("BEEF W/ BLACK BEAN SAUCE CHOW FUN", "11.00", CategoryChowFun),
	item("BEEF W/ BEAN SPROUT CHOW FUN", "11.00", CategoryChowFun),
	item("SINGAPORE STYLE CHOW RICE NOODLE", "12.00", CategoryChowFun),

	item("HOUSE SPECIAL ON RICE", "12.00", CategoryOnRice),
	item("SEAFOOD ON RICE", "12.00", CategoryOnRice),
	item("SHRIMP W/ MIXED VEGETABLES ON RICE", "10.00", CategoryOnRice),
	item("SHRIMP W/ SCRAMBLED EGG ON RICE", "10.00", CategoryOnRice),
	item("SHRIMP W/ BLACK BEAN SAUCE ON RICE", "10.00", CategoryOnRice),
	item("B.B.Q. PORK W/ BEAN CAKE ON RICE", "10.00", CategoryOnRice),
	item("CHICKEN W/ TENDER GREEN ON RICE", "10.00", CategoryOnRice),
	item("BEEF W/ BROCCOLI ON RICE", "10.00", CategoryOnRice),
	item("BEEF W/ OYSTER SAUCE ON RICE", "10.00", CategoryOnRice),
	item("BEEF W/ GINGER & SCALLIONS ON RICE", "10.00", CategoryOnRice),
	item("BEEF W/ TENDER GREEN ON RICE", "10.00", CategoryOnRice),
	item("CHICKEN W/ BLACK BEAN SAUCE ON RICE", "10.00", CategoryOnRice),
	item("CHICKEN W/ MIXED VEGETABLES ON RICE", "10.00", CategoryOnRice),
	item("CHICKEN W/ CURRY ON RICE", "10.00", CategoryOnRice),
	item("BEEF STEW W/ CURRY ON RICE", "10.00", CategoryOnRice),
	item("BEEF STEW W/ ORIGINAL JUICE ON RICE", "10.00", CategoryOnRice),
	item("SPARERIBS W/ BLACK BEAN SAUCE ON RICE", "10.00", CategoryOnRice),
	item("SPARERIBS W/ BEAN CAKE ON RICE", "10.00", CategoryOnRice),
	item("ROASTED DUCK ON RICE", "11.25", CategoryOnRice),
	item("ROASTED DUCK W/ BEAN CAKE ON RICE", "11.25", CategoryOnRice),

	item("TSING TAO", "5.25", CategoryBeverages),
	item("HEINEKEN", "5.25", CategoryBeverages),
	item("CORONA", "5.25", CategoryBeverages),
	item("DRINKS", "1.85", CategoryBeverages),

	item("DEEP-FRIED BANANA", "4.00", CategoryDessert),
}

var defaultCatalog = NewCatalog(menuEntries)

// DefaultCatalog returns the static in-process catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}
