// Package classfile reads compiled .class files to discover the methods and
// descriptors a class declares, and checks binding declarations against them
// before any VM is started.
//
//	cls, err := classfile.ParseFile("build/classes/com/example/Calc.class")
//	if err != nil {
//		return err
//	}
//	err = cls.Verify([]classfile.Decl{
//		{Name: "add", Descriptor: "(II)I", Static: true},
//	})
package classfile
