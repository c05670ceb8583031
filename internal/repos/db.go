package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"trailhead/internal/domain"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := EnsureSchema(db); err != nil {
		return nil, err
	}
	// Seed the sample catalog if the DB is empty
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func EnsureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Destinations
CREATE TABLE IF NOT EXISTS destinations(
  id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  location TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  original_price INTEGER,
  discount_percent INTEGER,
  images_json TEXT NOT NULL DEFAULT '[]',
  description TEXT,
  long_description TEXT,
  duration TEXT,
  group_size TEXT,
  difficulty TEXT CHECK (difficulty IN ('Beginner','Easy','Moderate','Difficult','Extreme')),
  rating REAL NOT NULL DEFAULT 0,
  review_count INTEGER NOT NULL DEFAULT 0,
  category TEXT NOT NULL,
  season TEXT,
  age_limit TEXT,
  languages_json TEXT NOT NULL DEFAULT '[]',
  highlights_json TEXT NOT NULL DEFAULT '[]',
  includes_json TEXT NOT NULL DEFAULT '[]',
  excludes_json TEXT NOT NULL DEFAULT '[]',
  itinerary_json TEXT NOT NULL DEFAULT '[]',
  what_to_bring_json TEXT NOT NULL DEFAULT '[]',
  safety_json TEXT NOT NULL DEFAULT '[]',
  featured INTEGER NOT NULL DEFAULT 0,
  available INTEGER NOT NULL DEFAULT 1,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_destinations_category   ON destinations(category);
CREATE INDEX IF NOT EXISTS idx_destinations_difficulty ON destinations(difficulty);
CREATE INDEX IF NOT EXISTS idx_destinations_price      ON destinations(price);
CREATE INDEX IF NOT EXISTS idx_destinations_rating     ON destinations(rating);
CREATE INDEX IF NOT EXISTS idx_destinations_created_at ON destinations(created_at);

-- Bookings
CREATE TABLE IF NOT EXISTS bookings(
  id TEXT PRIMARY KEY,
  destination_id TEXT NOT NULL REFERENCES destinations(id) ON DELETE RESTRICT,
  activity_date TEXT NOT NULL,
  participants INTEGER NOT NULL CHECK (participants >= 1),
  customer_name TEXT NOT NULL,
  customer_email TEXT NOT NULL,
  customer_phone TEXT,
  payment_method TEXT NOT NULL CHECK (payment_method IN ('credit_card','debit_card','paypal','stripe')),
  special_requests TEXT,
  total_price INTEGER NOT NULL,
  booking_status TEXT NOT NULL DEFAULT 'pending'
    CHECK (booking_status IN ('pending','confirmed','cancelled','completed')),
  payment_status TEXT NOT NULL DEFAULT 'pending'
    CHECK (payment_status IN ('pending','paid','failed','refunded')),
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bookings_email       ON bookings(customer_email);
CREATE INDEX IF NOT EXISTS idx_bookings_destination ON bookings(destination_id);
CREATE INDEX IF NOT EXISTS idx_bookings_created_at  ON bookings(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM destinations`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting sample destinations")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, d := range seedCatalog() {
		if err := insertDestination(tx, d); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func iptr(v int64) *int64 { return &v }
func pptr(v int) *int     { return &v }

// seedCatalog returns the demo adventure listings.
func seedCatalog() []domain.Destination {
	return []domain.Destination{
		{
			ID: "dest-kayaking", Slug: "kayaking", Title: "Kayaking Adventure",
			Location: "Udupi, Karnataka", Price: 999, OriginalPrice: iptr(1299), DiscountPercent: pptr(23),
			Images:      []domain.Image{{URL: "/uploads/kayaking.jpg", PublicID: "kayaking-1"}},
			Description: "Explore the serene backwaters of Udupi with a guided kayaking adventure, perfect for nature lovers.",
			LongDescription: "Embark on an unforgettable kayaking journey through the pristine backwaters of Udupi. " +
				"Our expert guides will lead you through tranquil waterways, hidden creeks, and mangrove forests teeming with biodiversity.",
			Duration: "4 hours", GroupSize: "2-8 people", Difficulty: domain.DifficultyBeginner,
			Rating: 4.8, ReviewCount: 127, Category: "Water Sports", Season: "All Year", AgeLimit: "8+ years",
			Languages: []string{"English", "Kannada", "Hindi"},
			Highlights: []domain.Highlight{
				{Text: "Guided kayaking tour through scenic backwaters"},
				{Text: "Safety equipment and briefings provided"},
				{Text: "Opportunities for bird watching and photography"},
			},
			Includes: []domain.ListItem{{Item: "Kayak and paddle rental"}, {Item: "Life jacket and safety gear"}, {Item: "Experienced guide"}},
			Excludes: []domain.ListItem{{Item: "Transportation to meeting point"}, {Item: "Personal expenses"}},
			Itinerary: []domain.ItineraryStop{
				{Time: "6:00 AM", Activity: "Meet at designated starting point", Description: "Welcome and introductions"},
				{Time: "6:45 AM", Activity: "Start kayaking through backwaters", Description: "Begin your journey through serene waterways"},
			},
			WhatToBring: []domain.ListItem{{Item: "Comfortable clothing that can get wet"}, {Item: "Sun protection (hat, sunscreen)"}},
			Safety:      []domain.SafetyMeasure{{Measure: "All guides are certified in CPR and first aid"}, {Measure: "Safety equipment regularly inspected"}},
			Featured:    true, Available: true,
		},
		{
			ID: "dest-sunrise-trek", Slug: "sunrise-trekking", Title: "Nandi Hills Sunrise Trek",
			Location: "Bangalore, Karnataka", Price: 899, OriginalPrice: iptr(1199), DiscountPercent: pptr(25),
			Images:      []domain.Image{{URL: "/uploads/sunrise.jpg", PublicID: "sunrise-trek-1"}},
			Description: "Experience the breathtaking sunrise from Nandi Hills with a guided trekking tour.",
			LongDescription: "Begin your day with an exhilarating trek to the summit of Nandi Hills, one of Karnataka's " +
				"most popular sunrise viewpoints, through well-maintained trails surrounded by lush greenery and historic sites.",
			Duration: "6 hours", GroupSize: "4-15 people", Difficulty: domain.DifficultyEasy,
			Rating: 4.6, ReviewCount: 89, Category: "Trekking", Season: "All Year", AgeLimit: "12+ years",
			Languages: []string{"English", "Kannada", "Hindi", "Tamil"},
			Highlights: []domain.Highlight{
				{Text: "Spectacular sunrise viewing from summit"},
				{Text: "Guided trek with historical insights"},
				{Text: "Breakfast at local restaurant included"},
			},
			Includes: []domain.ListItem{{Item: "Experienced trek guide"}, {Item: "Breakfast at local restaurant"}},
			Excludes: []domain.ListItem{{Item: "Personal expenses"}},
			Itinerary: []domain.ItineraryStop{
				{Time: "4:00 AM", Activity: "Pickup from designated point", Description: "Meet your guide and group"},
				{Time: "6:00 AM", Activity: "Reach summit for sunrise", Description: "Watch spectacular sunrise"},
			},
			WhatToBring: []domain.ListItem{{Item: "Trekking shoes"}, {Item: "Warm layer for the summit"}},
			Safety:      []domain.SafetyMeasure{{Measure: "Guides carry first aid kits"}},
			Featured:    true, Available: true,
		},
		{
			ID: "dest-coffee-trail", Slug: "coffee-trail", Title: "Coffee Trail Experience",
			Location: "Coorg, Karnataka", Price: 1299, OriginalPrice: iptr(1599), DiscountPercent: pptr(19),
			Images:      []domain.Image{{URL: "/uploads/coffeetrail.jpg", PublicID: "coffee-trail-1"}},
			Description: "Discover the rich flavors of Coorg's coffee plantations with an immersive coffee trail tour.",
			LongDescription: "Immerse yourself in the world of coffee with this exclusive tour through Coorg's famous " +
				"coffee plantations, learning about coffee varieties, cultivation techniques, and the journey from bean to cup.",
			Duration: "5 hours", GroupSize: "2-10 people", Difficulty: domain.DifficultyEasy,
			Rating: 4.9, ReviewCount: 156, Category: "Cultural Experience", Season: "September to March", AgeLimit: "All ages",
			Languages: []string{"English", "Kannada", "Hindi"},
			Highlights: []domain.Highlight{
				{Text: "Walk through lush coffee estates"},
				{Text: "Coffee tasting session with local varieties"},
			},
			Includes: []domain.ListItem{{Item: "Plantation guide"}, {Item: "Coffee tasting"}},
			Excludes: []domain.ListItem{{Item: "Transportation to Coorg"}},
			Itinerary: []domain.ItineraryStop{
				{Time: "9:00 AM", Activity: "Estate walk", Description: "Tour the plantation with a local grower"},
				{Time: "12:00 PM", Activity: "Tasting session", Description: "Sample freshly roasted brews"},
			},
			WhatToBring: []domain.ListItem{{Item: "Walking shoes"}},
			Safety:      []domain.SafetyMeasure{{Measure: "Marked trails throughout the estate"}},
			Featured:    true, Available: true,
		},
		{
			ID: "dest-boat-cruise", Slug: "boat-cruise", Title: "Sunderbans Boat Cruise",
			Location: "Sunderbans, West Bengal", Price: 1999, OriginalPrice: iptr(2499), DiscountPercent: pptr(20),
			Images:      []domain.Image{{URL: "/uploads/boatcruise.jpg", PublicID: "boat-cruise-1"}},
			Description: "Enjoy a relaxing boat cruise through the scenic waterways of the Sunderbans.",
			LongDescription: "Embark on an unforgettable journey through the mystical mangrove forests of Sunderbans, " +
				"a UNESCO World Heritage Site and home to the famous Royal Bengal Tiger.",
			Duration: "8 hours", GroupSize: "10-20 people", Difficulty: domain.DifficultyEasy,
			Rating: 4.7, ReviewCount: 203, Category: "Wildlife", Season: "October to March", AgeLimit: "5+ years",
			Languages: []string{"English", "Bengali", "Hindi"},
			Highlights: []domain.Highlight{
				{Text: "Cruise through the world's largest mangrove forest"},
				{Text: "Chance to spot the Royal Bengal Tiger"},
			},
			Includes: []domain.ListItem{{Item: "Boat cruise with crew"}, {Item: "Lunch on board"}},
			Excludes: []domain.ListItem{{Item: "Forest entry permit"}},
			Itinerary: []domain.ItineraryStop{
				{Time: "8:00 AM", Activity: "Board the cruise", Description: "Depart from the jetty"},
				{Time: "1:00 PM", Activity: "Lunch on board", Description: "Regional Bengali cuisine"},
			},
			WhatToBring: []domain.ListItem{{Item: "Binoculars"}, {Item: "Sun protection"}},
			Safety:      []domain.SafetyMeasure{{Measure: "Life jackets for every passenger"}},
			Featured:    false, Available: true,
		},
		{
			ID: "dest-bungy", Slug: "bungy-jumping", Title: "Bungy Jumping Adventure",
			Location: "Manali, Himachal Pradesh", Price: 2999, OriginalPrice: iptr(3499), DiscountPercent: pptr(14),
			Images:      []domain.Image{{URL: "/uploads/bungyjumping.jpg", PublicID: "bungy-1"}},
			Description: "Experience the ultimate thrill of bungy jumping in the picturesque landscapes of Manali.",
			LongDescription: "Take the leap of a lifetime at one of India's highest bungy jumping platforms, " +
				"offering stunning views of the mountains and valleys around Manali.",
			Duration: "3 hours", GroupSize: "1-6 people", Difficulty: domain.DifficultyExtreme,
			Rating: 4.8, ReviewCount: 342, Category: "Adventure Sports", Season: "March to November", AgeLimit: "18-50 years",
			Languages: []string{"English", "Hindi"},
			Highlights: []domain.Highlight{
				{Text: "Jump from one of India's highest platforms"},
				{Text: "Certified international jump masters"},
			},
			Includes: []domain.ListItem{{Item: "All safety equipment"}, {Item: "Jump certificate"}},
			Excludes: []domain.ListItem{{Item: "Video recording (available on site)"}},
			Itinerary: []domain.ItineraryStop{
				{Time: "10:00 AM", Activity: "Safety briefing", Description: "Harness fitting and instructions"},
				{Time: "11:00 AM", Activity: "Jump session", Description: "Your moment of free fall"},
			},
			WhatToBring: []domain.ListItem{{Item: "Closed shoes"}, {Item: "Valid ID proof"}},
			Safety:      []domain.SafetyMeasure{{Measure: "Equipment inspected before every jump"}, {Measure: "Medical screening on site"}},
			Featured:    true, Available: true,
		},
		{
			ID: "dest-rafting", Slug: "white-water-rafting", Title: "White Water Rafting",
			Location: "Rishikesh, Uttarakhand", Price: 1599, OriginalPrice: iptr(1999), DiscountPercent: pptr(20),
			Images:      []domain.Image{{URL: "/uploads/kayaking1.jpg", PublicID: "rafting-1"}},
			Description: "Experience the thrill of white water rafting in the holy waters of Ganga in Rishikesh.",
			LongDescription: "Get ready for an adrenaline-packed adventure as you navigate the rapids of the Ganges " +
				"River in Rishikesh, the perfect blend of adventure and spiritual ambiance.",
			Duration: "3 hours", GroupSize: "4-8 people", Difficulty: domain.DifficultyModerate,
			Rating: 4.7, ReviewCount: 289, Category: "Water Sports", Season: "September to June", AgeLimit: "14+ years",
			Languages: []string{"English", "Hindi"},
			Highlights: []domain.Highlight{
				{Text: "Navigate Grade II and III rapids"},
				{Text: "Cliff jumping spot en route"},
			},
			Includes: []domain.ListItem{{Item: "Raft, paddle and helmet"}, {Item: "Certified river guide"}},
			Excludes: []domain.ListItem{{Item: "Personal expenses"}},
			Itinerary: []domain.ItineraryStop{
				{Time: "9:00 AM", Activity: "Briefing at base camp", Description: "Paddling technique and river safety"},
				{Time: "10:00 AM", Activity: "Hit the rapids", Description: "16 km stretch to Rishikesh"},
			},
			WhatToBring: []domain.ListItem{{Item: "Quick-dry clothing"}, {Item: "Change of clothes"}},
			Safety:      []domain.SafetyMeasure{{Measure: "Rescue kayakers accompany every raft"}},
			Featured:    false, Available: true,
		},
		{
			ID: "dest-ice-climbing", Slug: "ice-climbing", Title: "Ice Climbing Expedition",
			Location: "Gulmarg, Jammu & Kashmir", Price: 1499, OriginalPrice: iptr(1899), DiscountPercent: pptr(21),
			Images:      []domain.Image{{URL: "/uploads/iceClimbing.jpg", PublicID: "ice-climbing-1"}},
			Description: "Challenge yourself with an exhilarating ice climbing expedition in the snowy terrains of Gulmarg.",
			LongDescription: "Experience the thrill of ice climbing in the stunning winter landscapes of Gulmarg, " +
				"testing your skills on frozen waterfalls under the guidance of experienced instructors.",
			Duration: "5 hours", GroupSize: "6-15 people", Difficulty: domain.DifficultyEasy,
			Rating: 4.5, ReviewCount: 178, Category: "Adventure Sports", Season: "December to February", AgeLimit: "All ages",
			Languages: []string{"English", "Hindi", "Urdu"},
			Highlights: []domain.Highlight{
				{Text: "Climb frozen waterfalls with expert instructors"},
				{Text: "All technical gear provided"},
			},
			Includes: []domain.ListItem{{Item: "Ice axes, crampons and harness"}, {Item: "Certified instructor"}},
			Excludes: []domain.ListItem{{Item: "Winter clothing rental"}},
			Itinerary: []domain.ItineraryStop{
				{Time: "8:00 AM", Activity: "Gear fitting", Description: "Crampons, harness and helmet"},
				{Time: "9:30 AM", Activity: "Climbing session", Description: "Guided ascents on the ice wall"},
			},
			WhatToBring: []domain.ListItem{{Item: "Insulated winter wear"}, {Item: "Sunglasses"}},
			Safety:      []domain.SafetyMeasure{{Measure: "Top-rope belay on all climbs"}},
			Featured:    false, Available: true,
		},
		{
			ID: "dest-sunrise-bir", Slug: "sunrise-hike-bir", Title: "Sunrise Hike at Bir Hills",
			Location: "Bir Billing, Himachal Pradesh", Price: 1499, OriginalPrice: iptr(1999), DiscountPercent: pptr(25),
			Images:      []domain.Image{{URL: "/uploads/sunrise1.jpg", PublicID: "Sunrise1"}},
			Description: "Witness a magical sunrise over the Himalayas with a guided morning hike in Bir Billing.",
			LongDescription: "Start your day early and hike up to a serene viewpoint overlooking the Himalayan valleys " +
				"of Bir Billing, ending with warm tea and breathtaking views.",
			Duration: "3 hours", GroupSize: "5-12 people", Difficulty: domain.DifficultyEasy,
			Rating: 4.8, ReviewCount: 276, Category: "Nature & Hiking", Season: "Throughout the year (best from October to April)", AgeLimit: "10+ years",
			Languages: []string{"English", "Hindi"},
			Highlights: []domain.Highlight{
				{Text: "Guided early morning hike"},
				{Text: "Breathtaking Himalayan sunrise views"},
				{Text: "Tea and snacks at the viewpoint"},
			},
			Includes: []domain.ListItem{{Item: "Local guide"}, {Item: "Morning tea and light snacks"}},
			Excludes: []domain.ListItem{{Item: "Hotel pickup/drop-off"}, {Item: "Personal expenses"}},
			Itinerary: []domain.ItineraryStop{
				{Time: "4:30 AM", Activity: "Meet at trailhead", Description: "Headlamp check and briefing"},
				{Time: "6:00 AM", Activity: "Sunrise at the viewpoint", Description: "Tea with a Himalayan panorama"},
			},
			WhatToBring: []domain.ListItem{{Item: "Warm jacket"}, {Item: "Torch or headlamp"}},
			Safety:      []domain.SafetyMeasure{{Measure: "Guides know the trail year-round"}},
			Featured:    false, Available: true,
		},
	}
}
