package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/homier/openaddr"
	"github.com/spf13/cobra"
)

const menuText = `
Hash Table Menu:
1. Insert Key-Value Pair
2. Search for Key
3. Remove Key
4. Print Hash Table
5. Exit
Enter your choice: `

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Drive an int-to-int table interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newMap[int, int](a)
			if err != nil {
				return err
			}

			return runMenu(m, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// menu reads whitespace-separated tokens the way the prompts expect them.
type menu struct {
	m   *openaddr.Map[int, int]
	in  *bufio.Scanner
	out io.Writer
}

// runMenu serves the menu until the user exits or input ends. The table is
// destroyed either way.
func runMenu(m *openaddr.Map[int, int], in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	mn := &menu{m: m, in: sc, out: out}

	for {
		fmt.Fprint(out, menuText)

		choice, ok := mn.next()
		if !ok {
			break
		}

		switch choice {
		case "1":
			mn.insert()
		case "2":
			mn.search()
		case "3":
			mn.remove()
		case "4":
			if err := mn.print(); err != nil {
				return err
			}
		case "5":
			fmt.Fprintln(out, "Exiting...")
			return m.Destroy(nil, nil)
		default:
			fmt.Fprintln(out, "Invalid choice. Please try again.")
		}
	}

	if err := mn.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return m.Destroy(nil, nil)
}

func (mn *menu) next() (string, bool) {
	if !mn.in.Scan() {
		return "", false
	}

	return mn.in.Text(), true
}

func (mn *menu) readInt(prompt string) (int, bool) {
	fmt.Fprint(mn.out, prompt)

	tok, ok := mn.next()
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		fmt.Fprintf(mn.out, "Invalid number %q.\n", tok)
		return 0, false
	}

	return n, true
}

func (mn *menu) insert() {
	key, ok := mn.readInt("Enter key: ")
	if !ok {
		return
	}
	value, ok := mn.readInt("Enter value: ")
	if !ok {
		return
	}

	if err := mn.m.Insert(key, value); err != nil {
		fmt.Fprintf(mn.out, "Error inserting Key-Value pair: %v\n", err)
		return
	}

	fmt.Fprintln(mn.out, "Key-Value pair inserted successfully.")
}

func (mn *menu) search() {
	key, ok := mn.readInt("Enter key to search: ")
	if !ok {
		return
	}

	idx, err := mn.m.Search(key)
	if err != nil {
		fmt.Fprintf(mn.out, "Key %d not found.\n", key)
		return
	}

	v, err := mn.m.Fetch(idx)
	if err != nil {
		fmt.Fprintf(mn.out, "Error fetching key %d: %v\n", key, err)
		return
	}

	fmt.Fprintf(mn.out, "Key %d found with value: %d\n", key, v)
}

func (mn *menu) remove() {
	key, ok := mn.readInt("Enter key to remove: ")
	if !ok {
		return
	}

	switch err := mn.m.Remove(key); {
	case err == nil:
		fmt.Fprintf(mn.out, "Key %d removed successfully.\n", key)
	case errors.Is(err, openaddr.ErrKeyNotFound):
		fmt.Fprintf(mn.out, "Key %d not found.\n", key)
	case errors.Is(err, openaddr.ErrShrinkFailed):
		fmt.Fprintf(mn.out, "Key %d removed, but the table could not shrink: %v\n", key, err)
	default:
		fmt.Fprintf(mn.out, "Error removing key %d: %v\n", key, err)
	}
}

func (mn *menu) print() error {
	stats := mn.m.Stats()
	fmt.Fprintf(mn.out, "Capacity: %d, Size: %d, Tombstones: %d\n", stats.Capacity, stats.Size, stats.Tombstones)

	return mn.m.Walk(func(i int, status openaddr.SlotStatus, key, value int) bool {
		switch status {
		case openaddr.SlotOccupied:
			fmt.Fprintf(mn.out, "%d: Key: %d, Value: %d\n", i, key, value)
		case openaddr.SlotTombstone:
			fmt.Fprintf(mn.out, "%d: Deleted\n", i)
		default:
			fmt.Fprintf(mn.out, "%d: Empty\n", i)
		}
		return true
	})
}
