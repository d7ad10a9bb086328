package utils

import "fmt"

var Industries = []string{
	"IT",
	"Game Development",
	"Financial Technology",
	"E-commerce",
}

var Departments = []string{
	"Engineering",
	"Data",
	"Product",
	"Design",
	"Operations",
}

// Countries maps a country to a few of its cities
var Countries = map[string][]string{
	"United Kingdom": {"London", "Manchester"},
	"United States":  {"New York", "Austin"},
	"France":         {"Paris", "Lyon"},
	"Germany":        {"Berlin", "Hamburg"},
	"Spain":          {"Madrid", "Barcelona"},
	"Poland":         {"Warsaw", "Krakow"},
	"Japan":          {"Tokyo"},
	"Singapore":      {"Singapore"},
}

var Skills = []string{"Go", "Python", "JavaScript", "SQL", "Kubernetes", "Communication", "System Design"}

var Institutions = []string{"Coursera", "edX", "Udacity", "Pluralsight", "MIT OpenCourseWare"}

var ApplicationSources = []string{"direct", "referral", "job-board", "social-media"}

// qualifiers
var qualifiers = []string{"Junior", "Senior", "Lead"}

// languages for Developers and Engineers
var languages = []string{"Java", "Python", "JavaScript", "Go", "C#", "C++", "Ruby", "C"}

// GenerateDeveloperJobs Function to combine different parts for Developers
func GenerateDeveloperJobs() []string {
	var combined []string
	for _, qualifier := range qualifiers {
		for _, language := range languages {
			combined = append(combined, fmt.Sprintf("%s %s Developer", qualifier, language))
		}
	}
	return combined
}

// GenerateCourseNames Function to combine skills into course titles
func GenerateCourseNames() []string {
	var combined []string
	for _, skill := range Skills {
		combined = append(combined, fmt.Sprintf("%s Fundamentals", skill), fmt.Sprintf("Advanced %s", skill))
	}
	return combined
}

// CountryNames returns the keys of Countries
func CountryNames() []string {
	names := make([]string, 0, len(Countries))
	for name := range Countries {
		names = append(names, name)
	}
	return names
}
