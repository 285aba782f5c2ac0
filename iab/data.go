package iab

// taxonomy is the IAB Tech Lab Ad Product Taxonomy 2.0 (November 2024).
// Source: https://github.com/InteractiveAdvertisingBureau/Taxonomies
// Table order matters: Children and Tier1Categories preserve it.
var taxonomy = []Category{
	// Ad Safety Risk
	{ID: 1001, Name: "Ad Safety Risk", Tier: 1},

	// Alcohol
	{ID: 1002, Name: "Alcohol", Tier: 1},
	{ID: 1003, Name: "Bars", Tier: 2, Parent: 1002},
	{ID: 1004, Name: "Beer", Tier: 2, Parent: 1002},
	{ID: 1005, Name: "Hard Sodas, Seltzers, Alco Pops", Tier: 2, Parent: 1002},
	{ID: 1006, Name: "Spirits", Tier: 2, Parent: 1002},
	{ID: 1007, Name: "Wine", Tier: 2, Parent: 1002},

	// Adult Products and Services
	{ID: 1008, Name: "Adult Products and Services", Tier: 1},

	// Business and Industrial
	{ID: 1010, Name: "Business and Industrial", Tier: 1},
	{ID: 1011, Name: "Advertising and Marketing", Tier: 2, Parent: 1010},
	{ID: 1012, Name: "Business Services", Tier: 2, Parent: 1010},
	{ID: 1020, Name: "Construction", Tier: 2, Parent: 1010},
	{ID: 1025, Name: "Energy Industry", Tier: 2, Parent: 1010},
	{ID: 1030, Name: "Manufacturing", Tier: 2, Parent: 1010},
	{ID: 1040, Name: "Transportation and Logistics", Tier: 2, Parent: 1010},
	{ID: 1045, Name: "Agriculture", Tier: 2, Parent: 1010},

	// Cannabis
	{ID: 1050, Name: "Cannabis", Tier: 1},
	{ID: 1051, Name: "CBD Products", Tier: 2, Parent: 1050},
	{ID: 1052, Name: "THC Products", Tier: 2, Parent: 1050},

	// Clothing and Accessories
	{ID: 1055, Name: "Clothing and Accessories", Tier: 1},
	{ID: 1056, Name: "Womens Apparel", Tier: 2, Parent: 1055},
	{ID: 1057, Name: "Mens Apparel", Tier: 2, Parent: 1055},
	{ID: 1058, Name: "Childrens Apparel", Tier: 2, Parent: 1055},
	{ID: 1060, Name: "Footwear", Tier: 2, Parent: 1055},
	{ID: 1065, Name: "Jewelry", Tier: 2, Parent: 1055},
	{ID: 1070, Name: "Watches", Tier: 2, Parent: 1055},
	{ID: 1075, Name: "Handbags and Accessories", Tier: 2, Parent: 1055},
	{ID: 1080, Name: "Eyewear", Tier: 2, Parent: 1055},

	// Collectables and Antiques
	{ID: 1085, Name: "Collectables and Antiques", Tier: 1},

	// Computer Software
	{ID: 1090, Name: "Computer Software", Tier: 1},
	{ID: 1091, Name: "Business Software", Tier: 2, Parent: 1090},
	{ID: 1092, Name: "Consumer Software", Tier: 2, Parent: 1090},
	{ID: 1093, Name: "Mobile Apps", Tier: 2, Parent: 1090},
	{ID: 1095, Name: "Video Games", Tier: 2, Parent: 1090},
	{ID: 1100, Name: "Security Software", Tier: 2, Parent: 1090},
	{ID: 1105, Name: "Cloud Services", Tier: 2, Parent: 1090},

	// Cosmetic Services
	{ID: 1110, Name: "Cosmetic Services", Tier: 1},

	// Consumer Electronics
	{ID: 1115, Name: "Consumer Electronics", Tier: 1},
	{ID: 1116, Name: "Computers and Laptops", Tier: 2, Parent: 1115},
	{ID: 1117, Name: "Tablets", Tier: 2, Parent: 1115},
	{ID: 1118, Name: "Smartphones", Tier: 2, Parent: 1115},
	{ID: 1120, Name: "Wearables", Tier: 2, Parent: 1115},
	{ID: 1121, Name: "Smartwatches", Tier: 3, Parent: 1120},
	{ID: 1122, Name: "Fitness Trackers", Tier: 3, Parent: 1120},
	{ID: 1125, Name: "Audio Equipment", Tier: 2, Parent: 1115},
	{ID: 1126, Name: "Headphones", Tier: 3, Parent: 1125},
	{ID: 1127, Name: "Speakers", Tier: 3, Parent: 1125},
	{ID: 1130, Name: "TVs and Displays", Tier: 2, Parent: 1115},
	{ID: 1135, Name: "Cameras and Photography", Tier: 2, Parent: 1115},
	{ID: 1140, Name: "Gaming Hardware", Tier: 2, Parent: 1115},
	{ID: 1145, Name: "Smart Home Devices", Tier: 2, Parent: 1115},

	// Consumer Packaged Goods
	{ID: 1150, Name: "Consumer Packaged Goods", Tier: 1},
	{ID: 1151, Name: "Food and Beverages", Tier: 2, Parent: 1150},
	{ID: 1160, Name: "Personal Care", Tier: 2, Parent: 1150},
	{ID: 1170, Name: "Household Products", Tier: 2, Parent: 1150},
	{ID: 1175, Name: "Beauty and Cosmetics", Tier: 2, Parent: 1150},
	{ID: 1180, Name: "Baby Products", Tier: 2, Parent: 1150},
	{ID: 1185, Name: "Pet Food and Supplies", Tier: 2, Parent: 1150},

	// Culture and Fine Arts
	{ID: 1200, Name: "Culture and Fine Arts", Tier: 1},

	// Dating
	{ID: 1210, Name: "Dating", Tier: 1},
	{ID: 1211, Name: "Dating Services", Tier: 2, Parent: 1210},

	// Debated Sensitive Social Issue
	{ID: 1215, Name: "Debated Sensitive Social Issue", Tier: 1},

	// Dieting and Weight Loss
	{ID: 1220, Name: "Dieting and Weight Loss", Tier: 1},
	{ID: 1221, Name: "Diet Programs", Tier: 2, Parent: 1220},

	// Durable Goods
	{ID: 1225, Name: "Durable Goods", Tier: 1},
	{ID: 1226, Name: "Appliances", Tier: 2, Parent: 1225},
	{ID: 1230, Name: "Furniture", Tier: 2, Parent: 1225},
	{ID: 1240, Name: "Home Improvement", Tier: 2, Parent: 1225},

	// Education and Careers
	{ID: 1260, Name: "Education and Careers", Tier: 1},
	{ID: 1261, Name: "Colleges and Universities", Tier: 2, Parent: 1260},
	{ID: 1262, Name: "Online Education", Tier: 2, Parent: 1260},
	{ID: 1265, Name: "Job Search", Tier: 2, Parent: 1260},

	// Events and Performances
	{ID: 1290, Name: "Events and Performances", Tier: 1},

	// Family and Parenting
	{ID: 1310, Name: "Family and Parenting", Tier: 1},

	// Finance and Insurance
	{ID: 1340, Name: "Finance and Insurance", Tier: 1},
	{ID: 1341, Name: "Banking", Tier: 2, Parent: 1340},
	{ID: 1345, Name: "Credit Cards", Tier: 2, Parent: 1340},
	{ID: 1350, Name: "Loans", Tier: 2, Parent: 1340},
	{ID: 1355, Name: "Insurance", Tier: 2, Parent: 1340},
	{ID: 1365, Name: "Investments", Tier: 2, Parent: 1340},
	{ID: 1370, Name: "Retirement Planning", Tier: 2, Parent: 1340},

	// Fitness Activities
	{ID: 1390, Name: "Fitness Activities", Tier: 1},
	{ID: 1391, Name: "Gyms and Fitness Centers", Tier: 2, Parent: 1390},
	{ID: 1395, Name: "Yoga and Pilates", Tier: 2, Parent: 1390},

	// Food and Beverage Services
	{ID: 1410, Name: "Food and Beverage Services", Tier: 1},
	{ID: 1411, Name: "Restaurants", Tier: 2, Parent: 1410},
	{ID: 1420, Name: "Food Delivery", Tier: 2, Parent: 1410},
	{ID: 1430, Name: "Coffee and Tea", Tier: 2, Parent: 1410},
	{ID: 1435, Name: "Grocery", Tier: 2, Parent: 1410},

	// Gambling
	{ID: 1440, Name: "Gambling", Tier: 1},
	{ID: 1441, Name: "Casinos", Tier: 2, Parent: 1440},
	{ID: 1443, Name: "Sports Betting", Tier: 2, Parent: 1440},

	// Gifts and Holiday Items
	{ID: 1460, Name: "Gifts and Holiday Items", Tier: 1},

	// Green/Eco
	{ID: 1470, Name: "Green/Eco", Tier: 1},

	// Health and Medical Services
	{ID: 1480, Name: "Health and Medical Services", Tier: 1},
	{ID: 1481, Name: "Healthcare Providers", Tier: 2, Parent: 1480},
	{ID: 1485, Name: "Dental Services", Tier: 2, Parent: 1480},
	{ID: 1495, Name: "Mental Health Services", Tier: 2, Parent: 1480},
	{ID: 1500, Name: "Telemedicine", Tier: 2, Parent: 1480},

	// Home and Garden Services
	{ID: 1520, Name: "Home and Garden Services", Tier: 1},

	// Legal Services
	{ID: 1550, Name: "Legal Services", Tier: 1},

	// Media
	{ID: 1560, Name: "Media", Tier: 1},
	{ID: 1561, Name: "Streaming Services", Tier: 2, Parent: 1560},
	{ID: 1565, Name: "News Media", Tier: 2, Parent: 1560},
	{ID: 1570, Name: "Podcasts", Tier: 2, Parent: 1560},
	{ID: 1580, Name: "Movies", Tier: 2, Parent: 1560},
	{ID: 1590, Name: "Music", Tier: 2, Parent: 1560},
	{ID: 1600, Name: "Social Media", Tier: 2, Parent: 1560},

	// Metals
	{ID: 1610, Name: "Metals", Tier: 1},

	// Non-Fiat Currency
	{ID: 1620, Name: "Non-Fiat Currency", Tier: 1},
	{ID: 1621, Name: "Cryptocurrency", Tier: 2, Parent: 1620},

	// Non-Profits
	{ID: 1630, Name: "Non-Profits", Tier: 1},

	// Personal/Consumer Telecom
	{ID: 1640, Name: "Personal/Consumer Telecom", Tier: 1},

	// Pet Ownership
	{ID: 1660, Name: "Pet Ownership", Tier: 1},
	{ID: 1661, Name: "Pet Supplies", Tier: 2, Parent: 1660},
	{ID: 1665, Name: "Veterinary Services", Tier: 2, Parent: 1660},

	// Pharmaceuticals
	{ID: 1680, Name: "Pharmaceuticals", Tier: 1},
	{ID: 1681, Name: "Prescription Drugs", Tier: 2, Parent: 1680},
	{ID: 1682, Name: "OTC Medications", Tier: 2, Parent: 1680},
	{ID: 1685, Name: "Vitamins and Supplements", Tier: 2, Parent: 1680},
	{ID: 1690, Name: "Pharmacies", Tier: 2, Parent: 1680},

	// Politics
	{ID: 1710, Name: "Politics", Tier: 1},

	// Real Estate
	{ID: 1720, Name: "Real Estate", Tier: 1},
	{ID: 1721, Name: "Residential Real Estate", Tier: 2, Parent: 1720},
	{ID: 1725, Name: "Commercial Real Estate", Tier: 2, Parent: 1720},

	// Religion and Spirituality
	{ID: 1740, Name: "Religion and Spirituality", Tier: 1},

	// Retail
	{ID: 1750, Name: "Retail", Tier: 1},
	{ID: 1751, Name: "E-commerce", Tier: 2, Parent: 1750},
	{ID: 1752, Name: "Department Stores", Tier: 2, Parent: 1750},

	// Sexual Health
	{ID: 1760, Name: "Sexual Health", Tier: 1},

	// Sporting Goods
	{ID: 1770, Name: "Sporting Goods", Tier: 1},
	{ID: 1771, Name: "Fitness Equipment", Tier: 2, Parent: 1770},
	{ID: 1772, Name: "Outdoor Recreation", Tier: 2, Parent: 1770},
	{ID: 1780, Name: "Team Sports Equipment", Tier: 2, Parent: 1770},
	{ID: 1795, Name: "Golf Equipment", Tier: 2, Parent: 1770},

	// Tobacco
	{ID: 1800, Name: "Tobacco", Tier: 1},
	{ID: 1801, Name: "Cigarettes", Tier: 2, Parent: 1800},
	{ID: 1803, Name: "Vaping", Tier: 2, Parent: 1800},

	// Travel and Tourism
	{ID: 1810, Name: "Travel and Tourism", Tier: 1},
	{ID: 1811, Name: "Airlines", Tier: 2, Parent: 1810},
	{ID: 1812, Name: "Hotels", Tier: 2, Parent: 1810},
	{ID: 1813, Name: "Vacation Rentals", Tier: 2, Parent: 1810},
	{ID: 1815, Name: "Car Rentals", Tier: 2, Parent: 1810},
	{ID: 1820, Name: "Cruises", Tier: 2, Parent: 1810},

	// Vehicles
	{ID: 1860, Name: "Vehicles", Tier: 1},
	{ID: 1861, Name: "Automotive", Tier: 2, Parent: 1860},
	{ID: 1870, Name: "Auto Parts", Tier: 2, Parent: 1860},
	{ID: 1875, Name: "Auto Services", Tier: 2, Parent: 1860},
	{ID: 1880, Name: "Motorcycles", Tier: 2, Parent: 1860},
	{ID: 1895, Name: "Bicycles", Tier: 2, Parent: 1860},
	{ID: 1900, Name: "Electric Vehicles", Tier: 2, Parent: 1860},

	// Weapons and Ammunition
	{ID: 1920, Name: "Weapons and Ammunition", Tier: 1},
	{ID: 1921, Name: "Firearms", Tier: 2, Parent: 1920},
	{ID: 1922, Name: "Ammunition", Tier: 2, Parent: 1920},
}
