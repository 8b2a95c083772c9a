package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
)

func main() {
	historyLimit := flag.Int("history", 200, "maximum undo snapshots (0 keeps all)")
	flag.Parse()

	sh := newShell(os.Stdout, *historyLimit)
	promptColor.Println("mockup shell. Type a command, or :select N, :content TEXT, :undo, :redo, :palette, :reset, :quit")
	sh.printDocument()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		promptColor.Print("> ")
		if !scanner.Scan() {
			break
		}
		if sh.handle(scanner.Text()) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
