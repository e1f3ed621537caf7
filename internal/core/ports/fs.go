package ports

import "os"

type FileSystemPort interface {
	ReadFile(filePath string) ([]byte, error)
	WriteFile(filePath string, permission os.FileMode, contents []byte) error
	Open(filePath string) (*os.File, error)
	ReadDir(dirName string) ([]string, error)
}
