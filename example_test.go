package parley_test

import (
	"context"
	"fmt"
	"log"

	"parley"
	"parley/pkg/domain"
	"parley/pkg/dsl"
)

// ExampleEngine_Advance walks a two-slot dialog turn by turn, the way a
// host feeds utterances into the engine.
func ExampleEngine_Advance() {
	dialog, err := dsl.NewDialog().
		Step("greet").
		Slot("Name", "What is your name?").
		Slot("City", "Which city are you in?").
		Handle(func(ctx context.Context, slots domain.SlotView) (string, error) {
			name, _ := slots.Get("Name")
			city, _ := slots.Get("City")
			return fmt.Sprintf("Hello %s from %s!", name, city), nil
		}).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	eng, err := parley.New(dialog)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	sess := domain.NewSession("example")

	// First contact: nothing filled yet, so the engine asks for Name.
	res, _ := eng.Advance(ctx, sess, "", "")
	fmt.Println(res.Text)

	// Answer the question it asked; it moves on to City.
	res, _ = eng.Advance(ctx, sess, res.Slot, "Ada")
	fmt.Println(res.Text)

	// With every slot filled the handler runs and the dialog completes.
	res, _ = eng.Advance(ctx, sess, res.Slot, "London")
	fmt.Println(res.Text)

	// Output:
	// What is your name?
	// Which city are you in?
	// Hello Ada from London!
}
