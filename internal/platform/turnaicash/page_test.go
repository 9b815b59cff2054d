package turnaicash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestDecodeList(t *testing.T) {
	next := "http://api/page=2"

	tests := []struct {
		name    string
		raw     string
		want    Page[item]
		wantErr bool
	}{
		{
			name: "pagination envelope",
			raw:  `{"count":12,"next":"http://api/page=2","previous":null,"results":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`,
			want: Page[item]{Count: 12, Next: &next, Results: []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}},
		},
		{
			name: "bare array becomes single page",
			raw:  `[{"id":1,"name":"a"},{"id":2,"name":"b"},{"id":3,"name":"c"}]`,
			want: Page[item]{Count: 3, Results: []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}},
		},
		{
			name: "bare array with leading whitespace",
			raw:  "\n\t [{\"id\":7,\"name\":\"x\"}]",
			want: Page[item]{Count: 1, Results: []item{{ID: 7, Name: "x"}}},
		},
		{
			name: "empty array",
			raw:  `[]`,
			want: Page[item]{Count: 0, Results: []item{}},
		},
		{
			name: "envelope with null results",
			raw:  `{"count":0,"next":null,"previous":null,"results":null}`,
			want: Page[item]{Count: 0, Results: []item{}},
		},
		{
			name: "empty body",
			raw:  ``,
			want: Page[item]{Results: []item{}},
		},
		{
			name:    "malformed array",
			raw:     `[{"id":`,
			wantErr: true,
		},
		{
			name:    "malformed envelope",
			raw:     `{"count":"notanumber"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := DecodeList[item]([]byte(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *page)
		})
	}
}

func TestDecodeListNeverReturnsNilResults(t *testing.T) {
	page, err := DecodeList[item]([]byte(`{"count":0}`))
	require.NoError(t, err)
	assert.NotNil(t, page.Results)
}
