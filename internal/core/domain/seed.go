package domain

// Seed datasets applied the first time a catalog collection is loaded with
// nothing persisted. Seed ids keep their original literal form; records
// created afterwards get generated uuids, so the two can never collide.

func SeedCompanies() []Company {
	return []Company{
		{ID: "1", Name: "Tesla", Image: "https://via.placeholder.com/150?text=Tesla"},
		{ID: "2", Name: "BMW", Image: "https://via.placeholder.com/150?text=BMW"},
		{ID: "3", Name: "Jaguar", Image: "https://via.placeholder.com/150?text=Jaguar"},
	}
}

func SeedCarModels() []CarModel {
	return []CarModel{
		{ID: "1", Name: "Tesla Model S", Company: "Tesla", Year: "2022", Details: "Flagship electric sedan with long range and autopilot.", Image: "https://via.placeholder.com/150?text=Tesla+Model+S"},
		{ID: "2", Name: "BMW 3 Series", Company: "BMW", Year: "2021", Details: "Compact executive sedan with balanced handling.", Image: "https://via.placeholder.com/150?text=BMW+3+Series"},
		{ID: "3", Name: "Jaguar F-Type", Company: "Jaguar", Year: "2020", Details: "Two-seat sports car with a supercharged engine.", Image: "https://via.placeholder.com/150?text=Jaguar+F-Type"},
	}
}

func SeedVariants() []Variant {
	return []Variant{
		{ID: "1", Name: "Tesla Model S", Variant: "Standard Range Plus", Details: "Standard Range Plus with basic features and great performance.", Image: "https://via.placeholder.com/150?text=Tesla+Model+S"},
		{ID: "2", Name: "Tesla Model S", Variant: "Long Range", Details: "Long Range with extended battery life and enhanced features.", Image: "https://via.placeholder.com/150?text=Tesla+Model+S+Long+Range"},
		{ID: "3", Name: "Tesla Model S", Variant: "Plaid", Details: "Plaid variant with ultimate performance and speed.", Image: "https://via.placeholder.com/150?text=Tesla+Model+S+Plaid"},
		{ID: "4", Name: "BMW 3 Series", Variant: "Base Model", Details: "Base Model with standard equipment and great fuel economy.", Image: "https://via.placeholder.com/150?text=BMW+3+Series"},
		{ID: "5", Name: "BMW 3 Series", Variant: "Sport", Details: "Sport variant with sportier suspension and styling.", Image: "https://via.placeholder.com/150?text=BMW+3+Series+Sport"},
		{ID: "6", Name: "BMW 3 Series", Variant: "M3", Details: "M3 performance model with advanced performance tuning.", Image: "https://via.placeholder.com/150?text=BMW+M3"},
		{ID: "7", Name: "Jaguar F-Type", Variant: "XE", Details: "XE variant with the base engine and luxury features.", Image: "https://via.placeholder.com/150?text=Jaguar+F-Type+XE"},
		{ID: "8", Name: "Jaguar F-Type", Variant: "R-Dynamic", Details: "R-Dynamic with more power and sportier styling.", Image: "https://via.placeholder.com/150?text=Jaguar+F-Type+R-Dynamic"},
		{ID: "9", Name: "Jaguar F-Type", Variant: "SVR", Details: "SVR with the highest performance and racing-inspired design.", Image: "https://via.placeholder.com/150?text=Jaguar+F-Type+SVR"},
	}
}
