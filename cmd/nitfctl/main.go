// Command nitfctl inspects and manipulates NITF files from the command line.
package main

func main() {
	execute()
}
