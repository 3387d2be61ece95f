package view

import "fmt"

type client struct {
	ID      string
	Name    string
	Email   string
	Amount  float64
	Tags    []string
	Company *string
}

func clientSchema() *Schema[client] {
	return MustSchema(
		Column[client]{Key: "id", Header: "ID", Hidden: true, Value: func(c client) Value { return Text(c.ID) }},
		Column[client]{Key: "name", Header: "Name", Sortable: true, Value: func(c client) Value { return Text(c.Name) }},
		Column[client]{Key: "email", Header: "Email", Value: func(c client) Value { return Text(c.Email) }},
		Column[client]{Key: "amount", Header: "Amount", Sortable: true, Value: func(c client) Value { return Number(c.Amount) }},
		Column[client]{Key: "tags", Header: "Tags", Value: func(c client) Value { return ValueOf(c.Tags) }},
		Column[client]{Key: "company", Header: "Company", Sortable: true, Value: func(c client) Value { return ValueOf(c.Company) }},
	)
}

// makeClients returns n clients named "Client 1".."Client n" with amount = i*10.
func makeClients(n int) []client {
	out := make([]client, n)
	for i := range out {
		out[i] = client{
			ID:     fmt.Sprintf("c-%d", i+1),
			Name:   fmt.Sprintf("Client %d", i+1),
			Email:  fmt.Sprintf("client%d@example.com", i+1),
			Amount: float64((i + 1) * 10),
		}
	}
	return out
}

func names(cs []client) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}
