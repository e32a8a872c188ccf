package coin

// Catalog event tags. Every reward trigger in the system uses one of these.
const (
	EventRegister         = "register"
	EventPublishAsset     = "publish_asset"
	EventPublishVersion   = "publish_version"
	EventAssetInstalled   = "asset_installed"
	EventInstallAsset     = "install_asset"
	EventWriteComment     = "write_comment"
	EventSubmitIssue      = "submit_issue"
	EventInviteUser       = "invite_user"
	EventAssetStarred     = "asset_starred"
	EventGithubStarSynced = "github_star_synced"
)

// Reward is the signed delta pair a catalog event carries.
type Reward struct {
	Reputation int64
	Credit     int64
}

// catalog maps event tags to their deltas. Changing a value here never
// rewrites existing ledger events; it only affects future triggers.
var catalog = map[string]Reward{
	EventRegister:         {Reputation: 0, Credit: 100},
	EventPublishAsset:     {Reputation: 1, Credit: 50},
	EventPublishVersion:   {Reputation: 1, Credit: 20},
	EventAssetInstalled:   {Reputation: 5, Credit: 10},
	EventInstallAsset:     {Reputation: 0, Credit: -1},
	EventWriteComment:     {Reputation: 0, Credit: 3},
	EventSubmitIssue:      {Reputation: 1, Credit: 2},
	EventInviteUser:       {Reputation: 5, Credit: 20},
	EventAssetStarred:     {Reputation: 5, Credit: 0},
	EventGithubStarSynced: {Reputation: 2, Credit: 0},
}

// Lookup returns the catalog entry for an event tag.
func Lookup(event string) (Reward, bool) {
	r, ok := catalog[event]
	return r, ok
}
