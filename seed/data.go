// Package seed holds the demo listings and articles loaded by the bulk seed
// endpoints and the seed command.
package seed

import "github.com/abhurtya/real-deal-server-side/models"

func ptr[V any](v V) *V { return &v }

// Properties returns a fresh copy of the demo listings.
func Properties() []*models.Property {
	return []*models.Property{
		{
			Title:       "Spacious 2BR Apartment in Downtown",
			Address:     "123 Main St, Downtown, City",
			Price:       ptr(2500.0),
			Type:        models.PropertyTypeRent,
			Bedrooms:    ptr(2),
			Bathrooms:   ptr(2),
			Size:        "1200 sqft",
			Description: "Beautiful 2 bedroom, 2 bathroom apartment in the heart of downtown. Large living room and kitchen with stainless steel appliances. Close to shopping, dining, and public transportation.",
			Image:       "https://source.unsplash.com/300x300/?house?1",
			Latitude:    ptr(40.7128),
			Longitude:   ptr(-74.006),
		},
		{
			Title:       "Charming 3BR House in Suburb",
			Address:     "456 Oak St, Suburb, City",
			Price:       ptr(500000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(3),
			Bathrooms:   ptr(2),
			Size:        "2000 sqft",
			Description: "Lovely 3 bedroom, 2 bathroom house with a large yard and plenty of natural light. Updated kitchen with granite countertops and stainless steel appliances. Great location in a quiet suburb with easy access to the highway.",
			Image:       "https://source.unsplash.com/300x300/?house?2",
			Latitude:    ptr(41.8781),
			Longitude:   ptr(-87.6298),
		},
		{
			Title:       "Luxurious 5BR Villa with Pool",
			Address:     "789 Palm St, Beachside, City",
			Price:       ptr(1000000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(5),
			Bathrooms:   ptr(4),
			Size:        "5000 sqft",
			Description: "Stunning 5 bedroom, 4 bathroom villa with a private pool and ocean views. Spacious living areas, gourmet kitchen, and top-of-the-line finishes throughout. Perfect for entertaining or relaxing with family.",
			Image:       "https://source.unsplash.com/300x300/?house?3",
			Latitude:    ptr(25.7907),
			Longitude:   ptr(-80.13),
		},
		{
			Title:       "Cozy 1BR Apartment in Midtown",
			Address:     "1010 10th St, Midtown, City",
			Price:       ptr(1500.0),
			Type:        models.PropertyTypeRent,
			Bedrooms:    ptr(1),
			Bathrooms:   ptr(1),
			Size:        "600 sqft",
			Description: "Comfortable 1 bedroom, 1 bathroom apartment in a great location. Walking distance to restaurants, bars, and shopping. Perfect for young professionals or couples.",
			Image:       "https://source.unsplash.com/300x300/?house?4",
			Latitude:    ptr(37.7749),
			Longitude:   ptr(-122.4194),
		},
		{
			Title:       "Modern 4BR House in Gated Community",
			Address:     "1111 Maple Ave, Gated Community, City",
			Price:       ptr(750000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(4),
			Bathrooms:   ptr(3),
			Size:        "3000 sqft",
			Description: "Beautiful 4 bedroom, 3 bathroom house in a secure gated community. Open floor plan with a gourmet kitchen, large bedrooms, and plenty of storage. Community amenities include a pool, tennis court, and playground.",
			Image:       "https://source.unsplash.com/300x300/?house?5",
			Latitude:    ptr(37.7749),
			Longitude:   ptr(-122.4194),
		},
		{
			Title:       "Stylish 2BR Loft in Arts District",
			Address:     "2222 Main St,Arts District, City",
			Price:       ptr(3000.0),
			Type:        models.PropertyTypeRent,
			Bedrooms:    ptr(2),
			Bathrooms:   ptr(2),
			Size:        "1500 sqft",
			Description: "Contemporary 2 bedroom, 2 bathroom loft with high ceilings, exposed brick walls, and hardwood floors. Located in the trendy Arts District, close to galleries, restaurants, and nightlife.",
			Image:       "https://source.unsplash.com/300x300/?house?6",
			Latitude:    ptr(34.0412),
			Longitude:   ptr(-118.2347),
		},
		{
			Title:       "Classic 3BR Colonial in Historic District",
			Address:     "3333 Elm St, Historic District, City",
			Price:       ptr(650000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(3),
			Bathrooms:   ptr(2),
			Size:        "2500 sqft",
			Description: "Charming 3 bedroom, 2 bathroom Colonial with period details and modern updates. Large living and dining rooms, updated kitchen, and beautiful landscaped yard. Located in a historic district with easy access to downtown.",
			Image:       "https://source.unsplash.com/300x300/?house?7",
			Latitude:    ptr(41.8781),
			Longitude:   ptr(-87.6298),
		},
		{
			Title:       "Spectacular 4BR Penthouse with City Views",
			Address:     "4444 Broadway, City Center, City",
			Price:       ptr(2000000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(4),
			Bathrooms:   ptr(4),
			Size:        "4000 sqft",
			Description: "Stunning 4 bedroom, 4 bathroom penthouse with panoramic city views. High ceilings, marble floors, and state-of-the-art appliances. Private elevator access and 24-hour doorman. A true luxury living experience.",
			Image:       "https://source.unsplash.com/300x300/?house?8",
			Latitude:    ptr(40.7128),
			Longitude:   ptr(-74.006),
		},
		{
			Title:       "Cozy 1BR Condo in Oceanfront Building",
			Address:     "5555 Ocean Blvd, Oceanfront, City",
			Price:       ptr(400000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(1),
			Bathrooms:   ptr(1),
			Size:        "800 sqft",
			Description: "Adorable 1 bedroom, 1 bathroom condo in an oceanfront building. Fully furnished with beachy decor and great natural light. Enjoy stunning ocean views and beach access from your own home.",
			Image:       "https://source.unsplash.com/300x300/?house?9",
			Latitude:    ptr(33.815),
			Longitude:   ptr(-118.3955),
		},
		{
			Title:       "Chic 2BR Townhouse in Trendy Neighborhood",
			Address:     "6666 Pine St, Trendy Neighborhood, City",
			Price:       ptr(550000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(2),
			Bathrooms:   ptr(2),
			Size:        "1200 sqft",
			Description: "Modern 2 bedroom, 2 bathroom townhouse in a trendy neighborhood. High-end finishes, open floor plan, and private outdoor space. Close to shops, restaurants, and public transportation.",
			Image:       "https://source.unsplash.com/300x300/?house?10",
			Latitude:    ptr(34.09),
			Longitude:   ptr(-118.3617),
		},
		{
			Title:       "Elegant 4BR House in Princeton",
			Address:     "10 Nassau St, Princeton, NJ",
			Price:       ptr(850000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(4),
			Bathrooms:   ptr(3),
			Size:        "2800 sqft",
			Description: "Beautiful 4 bedroom, 3 bathroom house in a peaceful neighborhood in Princeton. The house features a spacious living room, hardwood floors, and a large backyard. The kitchen is equipped with stainless steel appliances and granite countertops. Great schools and easy access to downtown Princeton.",
			Image:       "https://source.unsplash.com/300x300/?house?11",
			Latitude:    ptr(40.3501),
			Longitude:   ptr(-74.6532),
		},
		{
			Title:       "Charming 2BR Apartment in Hoboken",
			Address:     "56 Hudson St, Hoboken, NJ",
			Price:       ptr(3000.0),
			Type:        models.PropertyTypeRent,
			Bedrooms:    ptr(2),
			Bathrooms:   ptr(1),
			Size:        "1000 sqft",
			Description: "Lovely 2 bedroom, 1 bathroom apartment in a historic building in Hoboken. The apartment features a bright living room, updated kitchen, and hardwood floors. Walking distance to restaurants, bars, and shopping.",
			Image:       "https://source.unsplash.com/300x300/?house?12",
			Latitude:    ptr(40.743),
			Longitude:   ptr(-74.0324),
		},
		{
			Title:       "Spacious 5BR House in Summit",
			Address:     "75 Springfield Ave, Summit, NJ",
			Price:       ptr(1200000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(5),
			Bathrooms:   ptr(4),
			Size:        "4000 sqft",
			Description: "Stunning 5 bedroom, 4 bathroom house in the sought-after city of Summit. The house features a gourmet kitchen, large living room, and beautiful backyard. The bedrooms are spacious with plenty of natural light. Great schools and easy access to NYC.",
			Image:       "https://source.unsplash.com/300x300/?house?13",
			Latitude:    ptr(40.7131),
			Longitude:   ptr(-74.3688),
		},
		{
			Title:       "Luxurious 3BR Condo in Jersey City",
			Address:     "100 Warren St, Jersey City, NJ",
			Price:       ptr(1800000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(3),
			Bathrooms:   ptr(2),
			Size:        "2200 sqft",
			Description: "Stylish 3 bedroom, 2 bathroom condo in the heart of Jersey City. The condo features an open floor plan, high ceilings, and floor-to-ceiling windows with stunning views of the city. The kitchen is equipped with high-end appliances and granite countertops. Building amenities include a pool, gym, and 24-hour concierge.",
			Image:       "https://source.unsplash.com/300x300/?house?14",
			Latitude:    ptr(40.7178),
			Longitude:   ptr(-74.0431),
		},
		{
			Title:       "Cozy 1BR Cottage in Cape May",
			Address:     "125 Beach Ave, Cape May, NJ",
			Price:       ptr(450000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(1),
			Bathrooms:   ptr(1),
			Size:        "800 sqft",
			Description: "Adorable 1 bedroom, 1 bathroom cottage in the charming town of Cape May. The cottage features a bright living room, updated kitchen, and hardwood floors. The backyard is perfect for entertaining with a deck and fire pit. Walking distance to the beach and downtown Cape May.",
			Image:       "https://source.unsplash.com/300x300/?house?15",
			Latitude:    ptr(38.9351),
			Longitude:   ptr(-74.906),
		},
		{
			Title:       "Gorgeous 4BR House in Princeton",
			Address:     "20 Mercer St, Princeton, NJ",
			Price:       ptr(950000.0),
			Type:        models.PropertyTypeSale,
			Bedrooms:    ptr(4),
			Bathrooms:   ptr(3),
			Size:        "3000 sqft",
			Description: "Beautiful 4 bedroom, 3 bathroom house in a peaceful neighborhood in Princeton. The house features a spacious living room, hardwood floors, and a large backyard. The kitchen is equipped with stainless steel appliances and granite countertops. Great schools and easy access to downtown Princeton.",
			Image:       "https://source.unsplash.com/300x300/?house?16",
			Latitude:    ptr(40.3501),
			Longitude:   ptr(-74.6532),
		},	}
}

// News returns a fresh copy of the demo articles.
func News() []*models.News {
	return []*models.News{
		{
			Title:       "5 Do's and Don'ts of Buying Real Estate",
			Description: "When it comes to buying real estate, there are some important things to keep in mind. In this article, we'll go over 5 key do's and don'ts to help you make a smart investment.",
		},
		{
			Title:       "Why Purchasing Real Estate is a Great Investment",
			Description: "Real estate can be a great investment opportunity, providing both long-term growth and short-term rental income. Here's why you should consider adding real estate to your investment portfolio.",
		},
		{
			Title:       "Selling Real Estate: Tips for a Successful Sale",
			Description: "Selling real estate can be a daunting task, but with the right strategy and approach, you can get the most out of your sale. Here are some tips to help you make a successful sale.",
		},
	}
}
