package riot

import "strings"

// routingRegions maps platform regions to the regional routing values used by
// account-v1 and match-v5
var routingRegions = map[string]string{
	"na1":  "americas",
	"br1":  "americas",
	"la1":  "americas",
	"la2":  "americas",
	"oc1":  "americas",
	"kr":   "asia",
	"jp1":  "asia",
	"euw1": "europe",
	"eun1": "europe",
	"tr1":  "europe",
	"ru":   "europe",
}

// RoutingRegion returns the regional route for a platform region. Values that are
// already regional routes are returned unchanged.
func RoutingRegion(platform string) string {
	platform = strings.ToLower(platform)
	if routing, ok := routingRegions[platform]; ok {
		return routing
	}
	return platform
}

// IsPlatformRegion reports whether region is a known platform region
func IsPlatformRegion(region string) bool {
	_, ok := routingRegions[strings.ToLower(region)]
	return ok
}
