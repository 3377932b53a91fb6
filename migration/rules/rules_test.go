package rules

import (
	"context"
	"strings"
	"testing"

	"github.com/cloudblue/connect-migration/conntest"
	"github.com/cloudblue/connect-migration/errors"
	"github.com/cloudblue/connect-migration/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	rs, err := LoadFile("testdata/rules.yaml")
	require.NoError(t, err)

	assert.Equal(t, "legacy_info", rs.MigrationFlag)
	assert.True(t, rs.Serialize)
	require.Len(t, rs.Transformations, 5)

	email := rs.Transformations["email"]
	assert.Equal(t, "$.teamAdminEmail", email.Path)
	assert.Equal(t, CaseLower, email.Case)
	assert.True(t, email.Trim)
	require.NotNil(t, rs.Transformations["tags"].Join)
	assert.Equal(t, ",", *rs.Transformations["tags"].Join)
	require.NotNil(t, rs.Transformations["team_name"].Default)
	assert.Equal(t, "Unnamed team", *rs.Transformations["team_name"].Default)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.True(t, errors.ErrNotFound.Is(err))
}

func TestLoadInvalidRules(t *testing.T) {
	cases := map[string]struct {
		doc       string
		wantErr   *errors.Error
		wantField string
	}{
		"malformed document": {
			doc:     "transformations: [",
			wantErr: errors.ErrInput,
		},
		"unknown attribute": {
			doc:     "transformations:\n  email:\n    path: $.a\n    lowercase: true\n",
			wantErr: errors.ErrInput,
		},
		"missing path": {
			doc:       "transformations:\n  email:\n    case: lower\n",
			wantErr:   errors.ErrEmpty,
			wantField: "email",
		},
		"invalid path": {
			doc:       "transformations:\n  email:\n    path: '$.['\n",
			wantErr:   errors.ErrInput,
			wantField: "email",
		},
		"unknown case": {
			doc:       "transformations:\n  email:\n    path: $.a\n    case: title\n",
			wantErr:   errors.ErrInput,
			wantField: "email",
		},
		"unknown missing policy": {
			doc:       "transformations:\n  email:\n    path: $.a\n    missing: ignore\n",
			wantErr:   errors.ErrInput,
			wantField: "email",
		},
		"empty rule": {
			doc:       "transformations:\n  email:\n",
			wantErr:   errors.ErrEmpty,
			wantField: "email",
		},
		"migration flag with spaces": {
			doc:     "migration_flag: ' legacy'\n",
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			if tc.wantField != "" {
				assert.NotEmpty(t, errors.FieldErrors(err, tc.wantField))
			}
		})
	}
}

func TestLoadEmptyDocument(t *testing.T) {
	rs, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, migration.DefaultConfiguration(), rs.Configuration())
	assert.Empty(t, rs.Transformations)
}

func TestRuleTransform(t *testing.T) {
	str := func(s string) *string { return &s }

	cases := map[string]struct {
		rule    Rule
		payload string
		want    interface{}
		wantErr *errors.Error
	}{
		"single value": {
			rule:    Rule{Path: "$.teamId"},
			payload: `{"teamId": "abc"}`,
			want:    "abc",
		},
		"nested value": {
			rule:    Rule{Path: "$.team.name"},
			payload: `{"team": {"name": "Team"}}`,
			want:    "Team",
		},
		"lower case and trim": {
			rule:    Rule{Path: "$.email", Case: CaseLower, Trim: true},
			payload: `{"email": "  John@Example.COM "}`,
			want:    "john@example.com",
		},
		"upper case": {
			rule:    Rule{Path: "$.id", Case: CaseUpper},
			payload: `{"id": "ab-1"}`,
			want:    "AB-1",
		},
		"case ignored for non string values": {
			rule:    Rule{Path: "$.n", Case: CaseUpper},
			payload: `{"n": true}`,
			want:    true,
		},
		"several values": {
			rule:    Rule{Path: "$.tags[*]"},
			payload: `{"tags": ["a", "b"]}`,
			want:    []interface{}{"a", "b"},
		},
		"several values joined": {
			rule:    Rule{Path: "$.tags[*]", Join: str(", "), Case: CaseUpper},
			payload: `{"tags": ["a", 2, true, {"x": 1}]}`,
			want:    `A, 2, TRUE, {"X":1}`,
		},
		"single value joined": {
			rule:    Rule{Path: "$.tags[*]", Join: str(",")},
			payload: `{"tags": [10]}`,
			want:    "10",
		},
		"missing value passes by default": {
			rule:    Rule{Path: "$.teamId"},
			payload: `{}`,
			wantErr: errors.ErrParamPass,
		},
		"null value is missing": {
			rule:    Rule{Path: "$.teamId", Missing: MissingFail},
			payload: `{"teamId": null}`,
			wantErr: errors.ErrParamFail,
		},
		"missing value aborts": {
			rule:    Rule{Path: "$.teamId", Missing: MissingAbort},
			payload: `[]`,
			wantErr: errors.ErrAbort,
		},
		"missing value uses default": {
			rule:    Rule{Path: "$.teamId", Default: str(" Default "), Trim: true, Missing: MissingAbort},
			payload: `{}`,
			want:    "Default",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			require.NoError(t, tc.rule.compile())
			payload, err := migration.ParsePayload(tc.payload)
			require.NoError(t, err)

			got, err := tc.rule.Transform(context.Background(), migration.Input{
				Payload: payload,
				Logger:  conntest.NewLogger(),
			})
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRuleNotCompiled(t *testing.T) {
	r := Rule{Path: "$.a"}
	_, err := r.Transform(context.Background(), migration.Input{})
	assert.True(t, errors.ErrState.Is(err))
}

func TestRulesMigrateRequest(t *testing.T) {
	rs, err := LoadFile("testdata/rules.yaml")
	require.NoError(t, err)

	req := conntest.NewRequest("PR-1",
		conntest.Param("email", ""),
		conntest.Param("team_id", ""),
		conntest.Param("team_name", "keep"),
		conntest.Param("tags", ""),
		conntest.Param("seats", ""),
		conntest.Param("legacy_info", `{
			"teamAdminEmail": " Admin@Example.com",
			"teamId": "dbtid:123",
			"tags": ["a", "b"],
			"licNumber": 10
		}`),
	)

	cases := map[string]func() *migration.Engine{
		"apply": func() *migration.Engine {
			e := migration.NewEngine()
			rs.Apply(e)
			return e
		},
		"options": func() *migration.Engine {
			return migration.NewEngine(rs.Options()...)
		},
	}

	for testName, newEngine := range cases {
		t.Run(testName, func(t *testing.T) {
			e := newEngine()
			assert.Equal(t, "legacy_info", e.MigrationFlag())
			assert.True(t, e.Serialize())

			migrated, err := e.Migrate(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, "admin@example.com", conntest.ParamValue(migrated, "email"))
			assert.Equal(t, "dbtid:123", conntest.ParamValue(migrated, "team_id"))
			assert.Equal(t, "Unnamed team", conntest.ParamValue(migrated, "team_name"))
			assert.Equal(t, "a,b", conntest.ParamValue(migrated, "tags"))
			assert.Equal(t, "10", conntest.ParamValue(migrated, "seats"))
		})
	}
}

func TestRulesMissingRequiredValue(t *testing.T) {
	rs, err := LoadFile("testdata/rules.yaml")
	require.NoError(t, err)

	req := conntest.NewRequest("PR-1",
		conntest.Param("team_id", ""),
		conntest.Param("legacy_info", `{"teamAdminEmail": "a@b.c"}`),
	)
	_, err = migration.NewEngine(rs.Options()...).Migrate(context.Background(), req)
	assert.True(t, errors.ErrSkip.Is(err), "unexpected error: %+v", err)
}
