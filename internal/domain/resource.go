package domain

// ResourceType enumerates the ownable resource kinds. The set is closed:
// ownership checks treat anything outside it as denied.
type ResourceType string

const (
	ResourceUser       ResourceType = "user"
	ResourcePublisher  ResourceType = "publisher"
	ResourceAdvertiser ResourceType = "advertiser"
	ResourceCampaign   ResourceType = "campaign"
	ResourceAdZone     ResourceType = "ad_zone"
)
