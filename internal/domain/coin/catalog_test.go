package coin_test

import (
	"testing"

	"github.com/assethub/hub-api/internal/domain/coin"
)

func TestCatalogValues(t *testing.T) {
	cases := []struct {
		event      string
		reputation int64
		credit     int64
	}{
		{coin.EventRegister, 0, 100},
		{coin.EventPublishAsset, 1, 50},
		{coin.EventPublishVersion, 1, 20},
		{coin.EventAssetInstalled, 5, 10},
		{coin.EventInstallAsset, 0, -1},
		{coin.EventWriteComment, 0, 3},
		{coin.EventSubmitIssue, 1, 2},
		{coin.EventInviteUser, 5, 20},
		{coin.EventAssetStarred, 5, 0},
		{coin.EventGithubStarSynced, 2, 0},
	}

	for _, tc := range cases {
		reward, ok := coin.Lookup(tc.event)
		if !ok {
			t.Errorf("%s: not in catalog", tc.event)
			continue
		}
		if reward.Reputation != tc.reputation || reward.Credit != tc.credit {
			t.Errorf("%s: got (%d, %d), want (%d, %d)",
				tc.event, reward.Reputation, reward.Credit, tc.reputation, tc.credit)
		}
	}
}

func TestCatalogUnknownEvent(t *testing.T) {
	if _, ok := coin.Lookup("no_such_event"); ok {
		t.Fatal("expected unknown event to miss the catalog")
	}
}

func TestCurrencyValid(t *testing.T) {
	if !coin.CurrencyReputation.Valid() || !coin.CurrencyCredit.Valid() {
		t.Fatal("expected both currencies to be valid")
	}
	if coin.Currency("gold").Valid() {
		t.Fatal("expected unknown currency to be invalid")
	}
}
