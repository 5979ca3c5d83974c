// Pencilmatch - match image colours to coloured pencils
//
// Pencilmatch extracts dominant colours from images and matches them
// against coloured pencil catalogs.
package main

import "pencilmatch/internal/cli"

func main() {
	cli.Execute()
}
