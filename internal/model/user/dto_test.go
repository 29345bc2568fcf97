package user

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserPayload_Validate(t *testing.T) {
	var p CreateUserPayload
	require.NoError(t, json.Unmarshal([]byte(`{"firstname":"Pikachu"}`), &p))

	err := p.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	var missing []string
	for _, fe := range verrs {
		assert.Equal(t, "required", fe.Tag())
		missing = append(missing, fe.Field())
	}
	assert.ElementsMatch(t, []string{"Lastname", "Email", "City", "Language"}, missing)
}

func TestCreateUserPayload_ValidateComplete(t *testing.T) {
	var p CreateUserPayload
	body := `{"firstname":"Rondoudou","lastname":"Grodoudou","email":"r@wild.co","city":"New York","language":"Doudoudoudou"}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	require.NoError(t, p.Validate())

	u := p.ToUser(7)
	assert.Equal(t, User{ID: 7, Firstname: "Rondoudou", Lastname: "Grodoudou", Email: "r@wild.co", City: "New York", Language: "Doudoudoudou"}, u)
}

func TestUpdateUserPayload_IgnoresBodyID(t *testing.T) {
	p := UpdateUserPayload{ID: 3}
	require.NoError(t, json.Unmarshal([]byte(`{"id": 99}`), &p))
	assert.Equal(t, int64(3), p.ID)
}
