package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteTarget(t *testing.T) {
	cases := map[string]string{
		"INSERT INTO soil_test_results (id) VALUES (?)":                 "soil_test_results",
		"insert into user_profile(id) values (?) on conflict do update": "user_profile",
		"UPDATE user_profile SET name = ?":                              "user_profile",
		"DELETE FROM `soil_test_results`":                               "soil_test_results",
		"PRAGMA foreign_keys = ON":                                      "",
	}
	for query, want := range cases {
		assert.Equal(t, want, writeTarget(query), query)
	}
}
