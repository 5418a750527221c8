package model

// UpdateFeatureFlagsRequest is a partial update: only the toggles present in
// the body are written.
type UpdateFeatureFlagsRequest struct {
	FinancialFeaturesEnabled *bool `json:"financialFeaturesEnabled"`
	TransactionsEnabled      *bool `json:"transactionsEnabled"`
	WalletEnabled            *bool `json:"walletEnabled"`
	SubscriptionsEnabled     *bool `json:"subscriptionsEnabled"`
	MatchesEnabled           *bool `json:"matchesEnabled"`
	TrialBannerEnabled       *bool `json:"trialBannerEnabled"`
}

// Fields returns the present toggles as an update document.
func (r *UpdateFeatureFlagsRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.FinancialFeaturesEnabled != nil {
		fields["financialFeaturesEnabled"] = *r.FinancialFeaturesEnabled
	}
	if r.TransactionsEnabled != nil {
		fields["transactionsEnabled"] = *r.TransactionsEnabled
	}
	if r.WalletEnabled != nil {
		fields["walletEnabled"] = *r.WalletEnabled
	}
	if r.SubscriptionsEnabled != nil {
		fields["subscriptionsEnabled"] = *r.SubscriptionsEnabled
	}
	if r.MatchesEnabled != nil {
		fields["matchesEnabled"] = *r.MatchesEnabled
	}
	if r.TrialBannerEnabled != nil {
		fields["trialBannerEnabled"] = *r.TrialBannerEnabled
	}
	return fields
}
