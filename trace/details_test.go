package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetailsString(t *testing.T) {
	for _, tt := range []struct {
		details Details
		exp     string
	}{
		{
			details: ListMutationEvents,
			exp:     "omni.list.mutation",
		},
		{
			details: CursorEvents | ListLifeCycleEvents,
			exp:     "omni.list.cursor|omni.list.lifecycle",
		},
		{
			details: ListEvents,
			exp:     "omni.list|omni.list.cursor|omni.list.lifecycle|omni.list.mutation",
		},
		{
			details: 0,
			exp:     "",
		},
	} {
		t.Run(tt.exp, func(t *testing.T) {
			require.Equal(t, tt.exp, tt.details.String())
		})
	}
}

func TestMatchDetails(t *testing.T) {
	for _, tt := range []struct {
		pattern string
		opts    []matchDetailsOption
		exp     Details
	}{
		{
			pattern: `^omni\.list\.cursor$`,
			exp:     CursorEvents,
		},
		{
			pattern: `^omni\.list\.(mutation|lifecycle)$`,
			exp:     ListMutationEvents | ListLifeCycleEvents,
		},
		{
			pattern: `^omni\.list$`,
			exp:     ListEvents,
		},
		{
			pattern: `^unknown$`,
			exp:     DetailsAll,
		},
		{
			pattern: `^unknown$`,
			opts:    []matchDetailsOption{WithDefaultDetails(CursorEvents)},
			exp:     CursorEvents,
		},
		{
			pattern: `(`,
			opts:    []matchDetailsOption{WithDefaultDetails(ListMutationEvents)},
			exp:     ListMutationEvents,
		},
		{
			pattern: `omni\.list\.cursor`,
			opts:    []matchDetailsOption{WithPOSIXMatch()},
			exp:     CursorEvents,
		},
	} {
		t.Run(tt.pattern, func(t *testing.T) {
			require.Equal(t, tt.exp, MatchDetails(tt.pattern, tt.opts...))
		})
	}
}
