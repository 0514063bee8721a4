package models

// Categories lists the built-in word categories
var Categories = []string{
	"Sports",
	"Locations",
	"Foods",
	"Animals",
	"Historical Events",
	"People",
	"Professions",
	"Brands",
	"Vehicles",
	"Tools",
	"Games",
	"Cities",
	"Holidays",
	"Objects",
}
