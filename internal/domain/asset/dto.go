package asset

// PublishRequest publishes a new asset or a new version of an existing one.
type PublishRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=128"`
	DisplayName string `json:"display_name" validate:"max=128"`
	Version     string `json:"version" validate:"required,max=32"`
}

// SyncStarsRequest updates the externally synced star count.
type SyncStarsRequest struct {
	GithubStars int64 `json:"github_stars" validate:"gte=0"`
}
