package storage

import "fmt"

// endpoints maps a region code to its Edge Storage endpoint. The main
// region (de) uses the bare hostname.
var endpoints = map[string]string{
	"uk":     "https://uk.storage.bunnycdn.com",
	"us_ny":  "https://ny.storage.bunnycdn.com",
	"ny":     "https://ny.storage.bunnycdn.com",
	"us_la":  "https://la.storage.bunnycdn.com",
	"la":     "https://la.storage.bunnycdn.com",
	"sg":     "https://sg.storage.bunnycdn.com",
	"se":     "https://se.storage.bunnycdn.com",
	"br":     "https://br.storage.bunnycdn.com",
	"sa":     "https://ja.storage.bunnycdn.com",
	"au":     "https://syd.storage.bunnycdn.com",
	"au_syd": "https://syd.storage.bunnycdn.com",
	"syd":    "https://syd.storage.bunnycdn.com",
	"":       "https://storage.bunnycdn.com",
	"de":     "https://storage.bunnycdn.com",
}

// EndpointForRegion resolves a region code to its API endpoint.
func EndpointForRegion(region string) (string, error) {
	endpoint, ok := endpoints[region]
	if !ok {
		return "", fmt.Errorf("unknown storage region %q", region)
	}
	return endpoint, nil
}

// Regions returns the accepted region codes.
func Regions() []string {
	return []string{"uk", "de", "us_ny", "ny", "us_la", "la", "sg", "se", "br", "sa", "au", "au_syd", "syd"}
}
