package entity

import "time"

// FeatureFlags is the singleton toggle document read by the mobile client.
// Stored as featureFlags/settings.
type FeatureFlags struct {
	ID                       string     `bson:"_id,omitempty" json:"-"`
	FinancialFeaturesEnabled bool       `bson:"financialFeaturesEnabled" json:"financialFeaturesEnabled"`
	TransactionsEnabled      bool       `bson:"transactionsEnabled" json:"transactionsEnabled"`
	WalletEnabled            bool       `bson:"walletEnabled" json:"walletEnabled"`
	SubscriptionsEnabled     bool       `bson:"subscriptionsEnabled" json:"subscriptionsEnabled"`
	MatchesEnabled           bool       `bson:"matchesEnabled" json:"matchesEnabled"`
	TrialBannerEnabled       bool       `bson:"trialBannerEnabled" json:"trialBannerEnabled"`
	CreatedAt                *time.Time `bson:"createdAt,omitempty" json:"-"`
	LastUpdated              *time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}
