package file

import (
	"io/ioutil"
	"os"
	"strings"
)

type File struct {
	file *os.File
}

func New(path string, flag int) (*File, error) {
	file, err := os.OpenFile(path, flag, os.FileMode(0766))
	return &File{
		file: file,
	}, err
}

func (f *File) Name() string {
	return f.file.Name()
}

func (f *File) Write(bytes []byte) (int, error) {
	return f.file.Write(bytes)
}

func (f *File) Read(bytes []byte) (int, error) {
	return f.file.Read(bytes)
}

func (f *File) ReadAll() ([]byte, error) {
	return ioutil.ReadAll(f.file)
}

func (f *File) Sync() error {
	return f.file.Sync()
}

func (f *File) Close() error {
	return f.file.Close()
}

func (f *File) Delete() error {
	_ = f.file.Close()
	return os.Remove(f.file.Name())
}

func (f *File) Size() int64 {
	info, err := f.file.Stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

// List returns the names of regular files in dir carrying the suffix,
// in directory order, without recursing.
func List(dir string, suffix string) ([]string, error) {
	infos, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0)
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if strings.HasSuffix(info.Name(), suffix) {
			names = append(names, info.Name())
		}
	}
	return names, nil
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
