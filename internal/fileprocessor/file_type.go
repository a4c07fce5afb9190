package fileprocessor

import "github.com/moyu-x/file-organiser/pkg/classifier"

// determineKind 读取文件头确定内容类别
func (p *Processor) determineKind(filePath string) (string, error) {
	if p.classifier == nil {
		p.classifier = classifier.NewClassifier(p.Fs)
	}
	return p.classifier.Category(filePath)
}
