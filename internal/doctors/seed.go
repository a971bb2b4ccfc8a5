package doctors

// SeedRoster is the fixed initial roster applied once at startup when the
// doctors table is empty.
func SeedRoster() []Doctor {
	return []Doctor{
		{Name: "Dr. Rajesh Gupta", Specialty: "Cardiologist", Location: "Connaught Place, Delhi", Rating: 4.9, Availability: "Mon, Wed, Fri", Lat: 28.6315, Lng: 77.2167, Insurance: "HDFC Ergo, Max Bupa", ReviewsCount: 124, NextAvailable: "2026-02-22"},
		{Name: "Dr. Anjali Sharma", Specialty: "Orthopedic Surgeon", Location: "Saket, Delhi", Rating: 4.8, Availability: "Tue, Thu", Lat: 28.5244, Lng: 77.2100, Insurance: "Star Health, LIC", ReviewsCount: 89, NextAvailable: "2026-02-23"},
		{Name: "Dr. Vikram Singh", Specialty: "Neurologist", Location: "Dwarka, Delhi", Rating: 4.7, Availability: "Mon-Fri", Lat: 28.5823, Lng: 77.0500, Insurance: "Apollo Munich, HDFC", ReviewsCount: 56, NextAvailable: "2026-02-21"},
		{Name: "Dr. Meera Reddy", Specialty: "General Physician", Location: "Hauz Khas, Delhi", Rating: 4.6, Availability: "Daily", Lat: 28.5494, Lng: 77.2001, Insurance: "All Major Insurances", ReviewsCount: 210, NextAvailable: "2026-02-21"},
		{Name: "Dr. Amit Verma", Specialty: "Pediatrician", Location: "Rohini, Delhi", Rating: 4.9, Availability: "Mon-Sat", Lat: 28.7041, Lng: 77.1025, Insurance: "Max Bupa, Star Health", ReviewsCount: 145, NextAvailable: "2026-02-24"},
		{Name: "Dr. Neha Kapoor", Specialty: "Dermatologist", Location: "Greater Kailash, Delhi", Rating: 4.5, Availability: "Wed, Fri", Lat: 28.5482, Lng: 77.2326, Insurance: "HDFC Ergo", ReviewsCount: 78, NextAvailable: "2026-02-25"},
	}
}
