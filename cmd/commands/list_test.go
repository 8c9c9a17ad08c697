package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/issuebox/issuebox-cli/pkg/models"
)

func testBox() *models.Box {
	return &models.Box{
		Issues: []models.Issue{
			{
				Title:       "Foo",
				Description: []string{"Depends on Bar implementation"},
				Tags:        []string{"bug"},
			},
			{
				Title:       "Bar",
				Description: []string{"Needs a design pass", "Blocked on upstream release"},
				Tags:        []string{"good first issue", "help wanted"},
			},
		},
	}
}

func TestFormatList(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
		errMsg  string
	}{
		{
			name: "whole box",
			args: nil,
			want: "0. Foo (bug)\n  - Depends on Bar implementation\n" +
				"1. Bar (good first issue, help wanted)\n  - Needs a design pass\n  - Blocked on upstream release\n",
		},
		{
			name: "single issue",
			args: []string{"1"},
			want: "Bar (good first issue, help wanted)\n  - Needs a design pass\n  - Blocked on upstream release\n",
		},
		{
			name: "title field",
			args: []string{"0", "title"},
			want: "Foo\n",
		},
		{
			name: "tags field",
			args: []string{"1", "tags"},
			want: "good first issue, help wanted\n",
		},
		{
			name: "full description",
			args: []string{"1", "description"},
			want: "Needs a design pass\nBlocked on upstream release",
		},
		{
			name: "single description line",
			args: []string{"1", "description", "1"},
			want: "Blocked on upstream release\n",
		},
		{
			name:    "filter without index",
			args:    []string{"title"},
			wantErr: true,
			errMsg:  `list filter "title" requires an issue index`,
		},
		{
			name:    "issue out of range",
			args:    []string{"5"},
			wantErr: true,
			errMsg:  "no issue with index 5",
		},
		{
			name:    "description out of range",
			args:    []string{"0", "description", "3"},
			wantErr: true,
			errMsg:  "no description with index 3 on issue 0",
		},
		{
			name:    "unknown filter",
			args:    []string{"0", "labels"},
			wantErr: true,
			errMsg:  "unknown list filter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatList(testBox(), tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatListEmptyBox(t *testing.T) {
	got, err := FormatList(&models.Box{}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
