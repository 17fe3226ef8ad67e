package controllers

import (
	"github.com/dealshub/DealsHub/utils"
)

// RewardMailer sends reward emails for confirmed completions
type RewardMailer interface {
	SendRewardEmail(to, offerName, title, code string) error
}

// GeoLocator resolves a caller IP to a location
type GeoLocator interface {
	Resolve(ip string) utils.GeoLocation
}

// Shared handles built once in main and passed in here. Replaces the
// lazily-cached module-level clients the controllers would otherwise grow.
var (
	mailer      RewardMailer
	geoResolver GeoLocator
)

// Init wires the externally constructed mailer and geo resolver into the
// controller package. Must run before the router starts serving.
func Init(m RewardMailer, g GeoLocator) {
	mailer = m
	geoResolver = g
}
