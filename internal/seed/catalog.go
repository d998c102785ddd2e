package seed

type categorySeed struct {
	Name        string
	Description string
	ImageURL    string
	Slug        string
}

type productSeed struct {
	Name          string
	Description   string
	Price         string
	OriginalPrice string
	ImageURL      string
	Category      string // category slug
	Featured      bool
	NewArrival    bool
	Sale          bool
	Stock         int
	Rating        string
	Reviews       int
	Slug          string
}

var categories = []categorySeed{
	{Name: "מוצרי סופר", Description: "מוצרי מזון בסיסיים מהסופר הישראלי", ImageURL: "https://images.unsplash.com/photo-1579113800032-c38bd7635818", Slug: "supermarket"},
	{Name: "פירות יבשים", Description: "פירות יבשים איכותיים מישראל", ImageURL: "https://images.unsplash.com/photo-1596073419667-9d77d59f033f", Slug: "dried-fruits"},
	{Name: "אגוזים", Description: "אגוזים טריים וקלויים מהמשקים הישראלים", ImageURL: "https://images.unsplash.com/photo-1606923829579-0cb981a83e2e", Slug: "nuts"},
	{Name: "תבלינים ותערובות", Description: "תבלינים אותנטיים ותערובות תבלינים", ImageURL: "https://images.unsplash.com/photo-1532336414038-cf19250c5757", Slug: "spices"},
	{Name: "מוצרי מאפה", Description: "לחמים ומאפים מסורתיים ישראלים", ImageURL: "https://images.unsplash.com/photo-1549931319-a545dcf3bc7c", Slug: "bakery"},
	{Name: "רטבים", Description: "רטבים אותנטיים ישראלים", ImageURL: "https://images.unsplash.com/photo-1578020190125-f4f7c1c6f9b7", Slug: "sauces"},
	{Name: "משקאות חריפים", Description: "יין, בירה ומשקאות חריפים מישראל", ImageURL: "https://images.unsplash.com/photo-1566633806327-68e152aaf26d", Slug: "alcohol"},
	{Name: "טחינה וחומוס", Description: "טחינה איכותית וחומוס אותנטי ישראלי", ImageURL: "https://images.unsplash.com/photo-1590311930826-c6c9e159aaab", Slug: "tahini-hummus"},
	{Name: "חטיפים וממרחים", Description: "חטיפים וממרחים טעימים מישראל", ImageURL: "https://images.unsplash.com/photo-1621939514649-280e2ee25f60", Slug: "snacks"},
	{Name: "קפה", Description: "פולי קפה ותערובות קפה מישראל", ImageURL: "https://images.unsplash.com/photo-1518057111178-44a106bad636", Slug: "coffee"},
	{Name: "מוצרים אורגניים", Description: "מוצרי מזון אורגניים מוסמכים מישראל", ImageURL: "https://images.unsplash.com/photo-1542838132-92c53300491e", Slug: "organic"},
}

var products = []productSeed{
	{
		Name: "שמן זית עלית", Description: "שמן זית כתית מעולה מגידולי זיתים בגליל",
		Price: "24.99", ImageURL: "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5",
		Category: "supermarket", Featured: true, Stock: 50, Rating: "4.8", Reviews: 42, Slug: "elite-olive-oil",
	},
	{
		Name: "תערובת תמרים", Description: "תערובת של תמרים מג'הול ודגלת נור איכותיים",
		Price: "16.99", ImageURL: "https://images.unsplash.com/photo-1604085792782-8d92f276d7d8",
		Category: "dried-fruits", Featured: true, Stock: 30, Rating: "5.0", Reviews: 89, Slug: "israeli-date-mix",
	},
	{
		Name: "פיסטוקים קלויים", Description: "פיסטוקים קלויים עם מלח ים תיכוני",
		Price: "12.99", OriginalPrice: "15.99", ImageURL: "https://images.unsplash.com/photo-1525706732602-9a8567d73e29",
		Category: "nuts", Featured: true, Sale: true, Stock: 45, Rating: "4.7", Reviews: 56, Slug: "premium-pistachios",
	},
	{
		Name: "תערובת זעתר", Description: "זעתר אותנטי עם זעתר בר, שומשום וסומק",
		Price: "8.99", ImageURL: "https://images.unsplash.com/photo-1509358271058-acd22cc93898",
		Category: "spices", Featured: true, Stock: 60, Rating: "4.9", Reviews: 37, Slug: "zaatar-spice-blend",
	},
	{
		Name: "חלה ארטיזנלית ירושלמית", Description: "חלה מסורתית אפויה מקמח אורגני ישראלי",
		Price: "9.99", ImageURL: "https://images.unsplash.com/photo-1600398138360-73c3eaaa8d03",
		Category: "bakery", NewArrival: true, Stock: 40, Rating: "4.6", Reviews: 22, Slug: "artisan-challah",
	},
	{
		Name: "טחינה גולמית", Description: "טחינה גולמית עשויה מ-100% שומשום אתיופי",
		Price: "11.99", ImageURL: "https://images.unsplash.com/photo-1590676681590-59bbf667f8e9",
		Category: "tahini-hummus", NewArrival: true, Stock: 35, Rating: "4.8", Reviews: 24, Slug: "premium-tahini",
	},
	{
		Name: "יין ישראלי", Description: "יין אדום זוכה פרסים מאזור רמת הגולן",
		Price: "29.99", ImageURL: "https://images.unsplash.com/photo-1553361371-9513901d383f",
		Category: "alcohol", NewArrival: true, Stock: 25, Rating: "5.0", Reviews: 18, Slug: "israeli-wine",
	},
	{
		Name: "חטיף במבה", Description: "חטיף תירס פריך בטעם חמאת בוטנים",
		Price: "4.99", ImageURL: "https://images.unsplash.com/photo-1584178432809-fb5415b61dc8",
		Category: "snacks", Featured: true, NewArrival: true, Stock: 80, Rating: "4.7", Reviews: 31, Slug: "bamba-snacks",
	},
	{
		Name: "קפה טורקי עלית", Description: "קפה טורקי מסורתי טחון דק",
		Price: "7.99", ImageURL: "https://images.unsplash.com/photo-1506372023823-741c83b836fe",
		Category: "coffee", Featured: true, Stock: 50, Rating: "4.5", Reviews: 42, Slug: "elite-turkish-coffee",
	},
	{
		Name: "סירופ רימונים אורגני", Description: "סירופ רימונים מתוק וחמוץ עשוי מרימונים אורגניים ישראלים",
		Price: "13.99", ImageURL: "https://images.unsplash.com/photo-1592845598868-1c2b939181a4",
		Category: "organic", NewArrival: true, Stock: 30, Rating: "4.8", Reviews: 16, Slug: "pomegranate-molasses",
	},
	{
		Name: "רוטב חריף ישראלי", Description: "רוטב חריף שוג עם עשבי תיבול ופלפל חריף",
		Price: "6.99", OriginalPrice: "8.99", ImageURL: "https://images.unsplash.com/photo-1581166384010-1a548853cfc5",
		Category: "sauces", NewArrival: true, Sale: true, Stock: 45, Rating: "4.3", Reviews: 28, Slug: "israeli-hot-sauce",
	},
}
