package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDBName(t *testing.T) {
	cases := []struct {
		name   string
		conn   string
		dbName string
		want   string
	}{
		{
			"empty name keeps string",
			"postgres://u:p@localhost:5432/app",
			"",
			"postgres://u:p@localhost:5432/app",
		},
		{
			"url form replaces path",
			"postgres://u:p@localhost:5432/app?sslmode=disable",
			"leads",
			"postgres://u:p@localhost:5432/leads?sslmode=disable",
		},
		{
			"postgresql scheme",
			"postgresql://u:p@localhost/app",
			"leads",
			"postgresql://u:p@localhost/leads",
		},
		{
			"keyword form appends dbname",
			"host=localhost user=u password=p",
			"leads",
			"host=localhost user=u password=p dbname=leads",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyDBName(tc.conn, tc.dbName))
		})
	}
}
