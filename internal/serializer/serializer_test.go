package serializer_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dangerclosesec/hub/internal/model"
	"github.com/dangerclosesec/hub/internal/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ExampleModal struct {
	Name string
}

func init() {
	serializer.Register(&ExampleModal{}, serializer.SerializerFunc(func(input any) (any, error) {
		return map[string]string{"name": input.(*ExampleModal).Name}, nil
	}))
}

func TestRegisterSharesPointerAndValue(t *testing.T) {
	v, err := serializer.View(&ExampleModal{Name: "John Doe"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "John Doe"}, v)
}

func TestUnregisteredModel(t *testing.T) {
	_, err := serializer.View(struct{ X int }{1})
	assert.Error(t, err)
}

func TestPersonView(t *testing.T) {
	p := &model.Person{
		Slugged:   model.Slugged{Name: "John Doe", Slug: "john-doe"},
		Role:      "Developer",
		Interests: model.StringList("Go", "React"),
		GithubURL: "https://github.com/johndoe",
	}

	var buf bytes.Buffer
	require.NoError(t, serializer.Encode(p, &buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "/people/john-doe/", got["url"])
	assert.Equal(t, []any{"Go", "React"}, got["interests"])

	links := got["social_links"].([]any)
	require.Len(t, links, 1)
	assert.Equal(t, "GitHub", links[0].(map[string]any)["label"])
}

func TestCommunityView(t *testing.T) {
	year := 2015
	c := &model.Community{
		Slugged:     model.Slugged{Name: "Go Paris", Slug: "go-paris"},
		Links:       model.StringMap(map[string]string{"website": "https://go.paris", "linkedin": "https://linkedin.com/go"}),
		FoundedYear: &year,
	}

	v, err := serializer.View(c)
	require.NoError(t, err)

	view := v.(serializer.CommunityView)
	assert.Len(t, view.LinksDisplay, 2)
	require.Len(t, view.LinkItems, 1)
	assert.Equal(t, "https://go.paris", view.LinkItems[0].URL)
	assert.Equal(t, &year, view.FoundedYear)
}

func TestSchoolViewAndSlices(t *testing.T) {
	schools := []*model.School{
		{Slugged: model.Slugged{Name: "Le Wagon", Slug: "le-wagon"}, Programs: model.StringList("Web", "Data")},
		{Slugged: model.Slugged{Name: "Empty", Slug: "empty"}},
	}

	v, err := serializer.View(schools)
	require.NoError(t, err)

	views := v.([]any)
	require.Len(t, views, 2)
	assert.Equal(t, "Web, Data", views[0].(serializer.SchoolView).ProgramsDisplay)
	assert.Equal(t, "No programs listed", views[1].(serializer.SchoolView).ProgramsDisplay)
	assert.Equal(t, []string{}, views[1].(serializer.SchoolView).Programs)
}
