package catalog

import (
	"github.com/shopspring/decimal"

	"ntshop/internal/domain"
)

type seedRow struct {
	id    int
	name  string
	price string
	sub   string
}

var seedFashion = []seedRow{
	{1, "Slim Fit Jeans", "3500", "Men's Clothing"},
	{2, "Leather Handbag", "6800", "Women's Accessories"},
	{3, "Cotton T-Shirt", "1200", "Men's Clothing"},
	{4, "Summer Dress", "4500", "Women's Clothing"},
	{5, "Leather Belt", "1500", "Accessories"},
	{6, "Sports Shoes", "5500", "Footwear"},
	{7, "Woolen Sweater", "3800", "Winter Wear"},
	{8, "Formal Suit", "12000", "Men's Clothing"},
	{9, "Evening Gown", "8500", "Women's Clothing"},
	{10, "Running Shoes", "4200", "Footwear"},
	{11, "Leather Jacket", "9500", "Outerwear"},
	{12, "Casual Shirt", "1800", "Men's Clothing"},
	{13, "Skirt", "2800", "Women's Clothing"},
	{14, "Wrist Watch", "6500", "Accessories"},
	{15, "Sunglasses", "2200", "Accessories"},
	{16, "Backpack", "3200", "Bags"},
	{17, "Swimwear", "2500", "Beachwear"},
	{18, "Tie Set", "1200", "Accessories"},
	{19, "Winter Gloves", "800", "Winter Wear"},
	{20, "Formal Shoes", "4800", "Footwear"},
}

var seedEducation = []seedRow{
	{21, "Basic Geometry Box", "550", "Writing Materials"},
	{22, "Scientific Calculator", "2500", "Electronics"},
	{23, "Student Backpack", "3200", "Bags"},
	{24, "Notebook Set (5 pcs)", "800", "Stationery"},
	{25, "Dictionary", "1800", "Books"},
	{26, "Watercolor Set", "1200", "Art Supplies"},
	{27, "Laptop Bag", "2800", "Bags"},
	{28, "School Uniform", "4500", "Clothing"},
	{29, "Encyclopedia Set", "9500", "Books"},
	{30, "Drawing Board", "1800", "Art Supplies"},
	{31, "Pencil Case", "450", "Stationery"},
	{32, "Globe", "3200", "Educational Tools"},
	{33, "Whiteboard (Small)", "4200", "Office Supplies"},
	{34, "Stapler", "350", "Office Supplies"},
	{35, "File Folders (Pack of 10)", "600", "Office Supplies"},
	{36, "Desk Lamp", "1800", "Study Accessories"},
	{37, "Book Shelf", "8500", "Furniture"},
	{38, "Project File", "120", "Stationery"},
	{39, "College Bag", "3800", "Bags"},
	{40, "Study Table", "12500", "Furniture"},
}

var seedAutomobiles = []seedRow{
	{41, "Brake Pads (Set of 4)", "12500", "Car Spare Parts"},
	{42, "Car Battery", "18000", "Electrical"},
	{43, "Engine Oil (5L)", "8500", "Lubricants"},
	{44, "Car Cover", "4500", "Accessories"},
	{45, "Tire (17-inch)", "12000", "Wheels"},
	{46, "Car Air Freshener", "500", "Interior"},
	{47, "Wiper Blades (Pair)", "2200", "Maintenance"},
	{48, "Car Vacuum Cleaner", "3800", "Cleaning"},
	{49, "Jump Starter", "6500", "Tools"},
	{50, "Car Seat Covers", "7500", "Interior"},
	{51, "Steering Wheel Cover", "1200", "Interior"},
	{52, "Car Wash Kit", "2800", "Cleaning"},
	{53, "GPS Navigation", "9500", "Electronics"},
	{54, "Dash Camera", "8500", "Electronics"},
	{55, "Car Audio System", "15000", "Electronics"},
	{56, "Wheel Alignment", "4500", "Services"},
	{57, "Car Polish", "1800", "Cleaning"},
	{58, "Emergency Tool Kit", "5200", "Tools"},
	{59, "Car Floor Mats", "3200", "Interior"},
	{60, "Bike Helmet", "4500", "Motorcycle"},
}

var seedElectronics = []seedRow{
	{61, "43-inch 4K Smart TV", "75000", "TV"},
	{62, "Core i5 Laptop", "98000", "Laptops"},
	{63, "Wireless Headphones", "8500", "Audio"},
	{64, "Smartphone 128GB", "45000", "Mobile"},
	{65, "Tablet 10-inch", "32000", "Tablets"},
	{66, "Gaming Mouse", "3500", "Computer Accessories"},
	{67, "Bluetooth Speaker", "6500", "Audio"},
	{68, "Smart Watch", "12000", "Wearables"},
	{69, "Digital Camera", "55000", "Camera"},
	{70, "Printer", "18000", "Office Electronics"},
	{71, "External Hard Drive (1TB)", "8500", "Storage"},
	{72, "Wireless Router", "4500", "Networking"},
	{73, "Gaming Console", "45000", "Gaming"},
	{74, "Earphones", "1800", "Audio"},
	{75, "Power Bank 20000mAh", "3500", "Mobile Accessories"},
	{76, "Monitor 24-inch", "22000", "Computer"},
	{77, "Keyboard Mechanical", "5500", "Computer Accessories"},
	{78, "Webcam HD", "3800", "Computer Accessories"},
	{79, "Air Purifier", "12500", "Home Appliances"},
	{80, "Electric Kettle", "2800", "Home Appliances"},
}

// SeedDefaults fills an empty catalog with the stock product set. Safe to
// call on every startup: a non-empty catalog is left alone, matching the
// seed-if-empty behavior used for first runs.
func (c *Catalog) SeedDefaults() error {
	if c.Len() > 0 {
		return nil
	}
	groups := []struct {
		cat  domain.Category
		rows []seedRow
	}{
		{domain.Fashion, seedFashion},
		{domain.Education, seedEducation},
		{domain.Automobiles, seedAutomobiles},
		{domain.Electronics, seedElectronics},
	}
	for _, g := range groups {
		for _, r := range g.rows {
			p := &domain.Product{
				ID:          r.id,
				Name:        r.name,
				Category:    g.cat,
				SubCategory: r.sub,
				BasePrice:   decimal.RequireFromString(r.price),
			}
			if err := c.Add(p); err != nil {
				return err
			}
		}
	}
	return nil
}
