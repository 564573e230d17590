/*
Package tabbar recolors Lucide icons and rasterizes them into PNG images
for mobile application tab bars.

The package provides two command line tools:

	$ tabbar House Settings User -c "#999" -a "#1890ff" -o ./tabbar-icons
	$ lucidegen -in ./lucide/icons -out ./icons

In case you wish to use the API in your own program, here is a simple example:

	package main

	import (
		"fmt"

		tabbar "github.com/esimov/lucide-tabbar"
	)

	func main() {
		house := tabbar.NewIcon("house", houseSVG)
		img := house.Image(tabbar.Params{
			Color:       "#1890ff",
			StrokeWidth: 2,
			Size:        tabbar.Px(32),
		})
		fmt.Println(img.Src, img.Width, img.Height)
	}

Rendered data URLs are memoized per template and parameter set.
*/
package tabbar
