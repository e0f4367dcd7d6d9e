package generate

// DefaultArgNames are synthetic file names used as extra arguments.
var DefaultArgNames = []string{
	"report.txt", "input.txt", "input_file.txt", "in.txt", "origin.txt", "source.txt", "src.txt",
	"data.txt", "beginning.txt", "start.txt", "info.txt", "notes.md", "access.log", "users.csv",
}

// DefaultOutputNames are file names used for output redirection. They never
// overlap DefaultArgNames.
var DefaultOutputNames = []string{
	"output.txt", "output_file.txt", "out.txt", "result.txt", "destination.txt", "dest.txt",
	"file.txt", "end.txt", "finish.txt", "dump.txt",
}
