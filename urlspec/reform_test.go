package urlspec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReformSpec(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{
			name: "sub-protocol before query and fragment",
			spec: "jdbc:mysql://localhost:3307/mydb?charset=UTF-8#top",
			want: "jdbc://localhost:3307/mydb;_sp=mysql?charset=UTF-8#top",
		},
		{
			name: "nested sub-protocols are colon joined",
			spec: "jdbc:mysql:replication://h/db",
			want: "jdbc://h/db;_sp=mysql:replication",
		},
		{
			name: "inserted before existing matrix parameter",
			spec: "jdbc:mysql://h/db;a=1?q=2",
			want: "jdbc://h/db;_sp=mysql;a=1?q=2",
		},
		{
			name: "semicolon inside query is ignored",
			spec: "jdbc:mysql://h/db?q=a;b",
			want: "jdbc://h/db;_sp=mysql?q=a;b",
		},
		{
			name: "empty path with query gets root segment",
			spec: "jdbc:mysql://h?q=1",
			want: "jdbc://h/;_sp=mysql?q=1",
		},
		{
			name: "empty path gets root segment",
			spec: "jdbc:mysql://h",
			want: "jdbc://h/;_sp=mysql",
		},
		{
			name: "appended before fragment",
			spec: "jdbc:mysql://h/db#frag",
			want: "jdbc://h/db;_sp=mysql#frag",
		},
		{
			name: "empty authority",
			spec: "resource:assets:///img/logo.png",
			want: "resource:///img/logo.png;_sp=assets",
		},
		{
			name: "empty sub-tokens are dropped",
			spec: "jdbc:mysql::ssl://h/",
			want: "jdbc://h/;_sp=mysql:ssl",
		},
		{
			name: "delimiters in token are escaped",
			spec: "x:a=b://h/p",
			want: "x://h/p;_sp=a%3Db",
		},
		{
			name: "plain URL is unchanged",
			spec: "http://example.com/a?b=c#d",
			want: "http://example.com/a?b=c#d",
		},
		{
			name: "marker in query is unchanged",
			spec: "file:/tmp/x?u=http://y",
			want: "file:/tmp/x?u=http://y",
		},
		{
			name: "empty token is unchanged",
			spec: "jdbc:://h/db",
			want: "jdbc:://h/db",
		},
		{
			name: "marker in fragment is unchanged",
			spec: "urn:x#http://y",
			want: "urn:x#http://y",
		},
		{
			name: "no scheme is unchanged",
			spec: "//host/path",
			want: "//host/path",
		},
		{
			name: "invalid scheme is unchanged",
			spec: "1jdbc:mysql://h/db",
			want: "1jdbc:mysql://h/db",
		},
		{
			name: "empty spec",
			spec: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReformSpec(tt.spec))
		})
	}
}

func TestReform(t *testing.T) {
	t.Run("returns new limit at fragment", func(t *testing.T) {
		spec := "jdbc:mysql://h/db#top"
		limit := strings.IndexByte(spec, '#')

		got, newLimit := Reform(spec, len("jdbc:"), limit)

		assert.Equal(t, "jdbc://h/db;_sp=mysql#top", got)
		assert.Equal(t, strings.IndexByte(got, '#'), newLimit)
	})

	t.Run("returns new limit at end", func(t *testing.T) {
		spec := "jdbc:mysql://h/db"

		got, newLimit := Reform(spec, len("jdbc:"), len(spec))

		assert.Equal(t, len(got), newLimit)
	})

	t.Run("unchanged without marker", func(t *testing.T) {
		spec := "jdbc://h/db"

		got, newLimit := Reform(spec, len("jdbc:"), len(spec))

		assert.Equal(t, spec, got)
		assert.Equal(t, len(spec), newLimit)
	})

	t.Run("marker beyond limit is ignored", func(t *testing.T) {
		spec := "jdbc:mysql#://h"

		got, newLimit := Reform(spec, len("jdbc:"), strings.IndexByte(spec, '#'))

		assert.Equal(t, spec, got)
		assert.Equal(t, strings.IndexByte(spec, '#'), newLimit)
	})

	t.Run("out of range arguments", func(t *testing.T) {
		got, newLimit := Reform("abc", 5, 2)
		assert.Equal(t, "abc", got)
		assert.Equal(t, 2, newLimit)

		got, newLimit = Reform("abc", 0, 10)
		assert.Equal(t, "abc", got)
		assert.Equal(t, 10, newLimit)

		got, _ = Reform("abc", -1, 3)
		assert.Equal(t, "abc", got)
	})

	t.Run("prefix before start is kept verbatim", func(t *testing.T) {
		got, _ := Reform("JDBC:mysql://h/db", len("JDBC:"), len("JDBC:mysql://h/db"))
		assert.Equal(t, "JDBC://h/db;_sp=mysql", got)
	})
}

func TestScheme(t *testing.T) {
	tests := []struct {
		spec   string
		want   string
		wantOK bool
	}{
		{spec: "JDBC:mysql://h", want: "jdbc", wantOK: true},
		{spec: "http://h", want: "http", wantOK: true},
		{spec: "svn+ssh://h", want: "svn+ssh", wantOK: true},
		{spec: "1abc:x", wantOK: false},
		{spec: ":x", wantOK: false},
		{spec: "no-colon", wantOK: false},
		{spec: "/path:x", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, ok := Scheme(tt.spec)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidScheme(t *testing.T) {
	assert.True(t, ValidScheme("a"))
	assert.True(t, ValidScheme("resource"))
	assert.True(t, ValidScheme("a1+b-c.d"))
	assert.False(t, ValidScheme(""))
	assert.False(t, ValidScheme("1a"))
	assert.False(t, ValidScheme("+a"))
	assert.False(t, ValidScheme("protocol_test"))
	assert.False(t, ValidScheme("a b"))
}
